package entity

import (
	"errors"
	"fmt"
	"sort"
)

// Settings is the deployment settings record. It is built once at start-up
// and must not be mutated afterwards.
type Settings struct {
	Solidity       string                    `json:"solidity"`
	DefaultNetwork string                    `json:"defaultNetwork"`
	Networks       map[string]NetworkProfile `json:"networks"`
}

// Network returns the named profile.
func (s *Settings) Network(name string) (NetworkProfile, error) {
	if s == nil {
		return NetworkProfile{}, fmt.Errorf("%w: %s", ErrNetworkNotFound, name)
	}
	profile, ok := s.Networks[name]
	if !ok {
		return NetworkProfile{}, fmt.Errorf("%w: %s", ErrNetworkNotFound, name)
	}
	return profile, nil
}

// NetworkNames returns the profile names in lexical order.
func (s *Settings) NetworkNames() []string {
	names := make([]string, 0, len(s.Networks))
	for name := range s.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the credentials of every profile.
func (s *Settings) Validate() error {
	var errs []error
	for _, name := range s.NetworkNames() {
		if err := s.Networks[name].ValidateCredentials(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
