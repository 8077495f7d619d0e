package restapi

import (
	"errors"
	"net/http"
	"time"

	"aurora_deployer/internal/app/port"
	"aurora_deployer/internal/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// APISettingsResponse is the body of GET /api/v1/settings.
type APISettingsResponse struct {
	Solidity       string                      `json:"solidity"`
	DefaultNetwork string                      `json:"defaultNetwork"`
	Networks       []entity.NetworkProfileView `json:"networks"`
}

// APIAccountsResponse is the body of GET /api/v1/networks/:name/accounts.
type APIAccountsResponse struct {
	Network  string           `json:"network"`
	Accounts []entity.Account `json:"accounts"`
}

// APIErrorResponse is returned with every non-2xx status.
type APIErrorResponse struct {
	Error string `json:"error"`
}

// SettingsHandler serves read-only views of the deployment settings.
type SettingsHandler struct {
	settings     port.SettingsProvider
	profiles     port.NetworkProfileProvider
	accounts     port.AccountService
	accountCache *cache.Cache
	logger       port.Logger
}

// NewSettingsHandler creates a new SettingsHandler. Account lists are cached
// for accountsTTL.
func NewSettingsHandler(
	settings port.SettingsProvider,
	profiles port.NetworkProfileProvider,
	accounts port.AccountService,
	accountsTTL, cleanupInterval time.Duration,
	l port.Logger,
) *SettingsHandler {
	return &SettingsHandler{
		settings:     settings,
		profiles:     profiles,
		accounts:     accounts,
		accountCache: cache.New(accountsTTL, cleanupInterval),
		logger:       l,
	}
}

func profileViews(profiles []entity.NetworkProfile) []entity.NetworkProfileView {
	views := make([]entity.NetworkProfileView, len(profiles))
	for i, profile := range profiles {
		views[i] = profile.View()
	}
	return views
}

// GetSettingsHandler returns the whole settings record with credentials masked.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	settings := h.settings.GetSettings()
	c.JSON(http.StatusOK, APISettingsResponse{
		Solidity:       settings.Solidity,
		DefaultNetwork: settings.DefaultNetwork,
		Networks:       profileViews(h.profiles.GetAllProfiles()),
	})
}

// ListNetworksHandler returns every network profile.
func (h *SettingsHandler) ListNetworksHandler(c *gin.Context) {
	c.JSON(http.StatusOK, profileViews(h.profiles.GetAllProfiles()))
}

// GetNetworkHandler returns one network profile.
func (h *SettingsHandler) GetNetworkHandler(c *gin.Context) {
	name := c.Param("name")
	profile, ok := h.profiles.GetProfileByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, APIErrorResponse{Error: "network not found: " + name})
		return
	}
	c.JSON(http.StatusOK, profile.View())
}

// ListAccountsHandler returns the signing accounts of one network profile.
func (h *SettingsHandler) ListAccountsHandler(c *gin.Context) {
	name := c.Param("name")

	if cached, found := h.accountCache.Get(name); found {
		c.JSON(http.StatusOK, APIAccountsResponse{Network: name, Accounts: cached.([]entity.Account)})
		return
	}

	accounts, err := h.accounts.ListAccounts(c.Request.Context(), name)
	switch {
	case errors.Is(err, entity.ErrNetworkNotFound):
		c.JSON(http.StatusNotFound, APIErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, entity.ErrInvalidCredential):
		c.JSON(http.StatusUnprocessableEntity, APIErrorResponse{Error: err.Error()})
		return
	case err != nil:
		h.logger.Error("Failed to list accounts", "network", name, "error", err)
		c.JSON(http.StatusBadGateway, APIErrorResponse{Error: err.Error()})
		return
	}

	h.accountCache.SetDefault(name, accounts)
	c.JSON(http.StatusOK, APIAccountsResponse{Network: name, Accounts: accounts})
}

// HealthHandler reports liveness.
func (h *SettingsHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
