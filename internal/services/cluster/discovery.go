package cluster

import (
	"errors"
	"fmt"
	"math/rand"

	consul "github.com/hashicorp/consul/api"
)

// ErrNoHealthyInstance é retornado quando o Consul não conhece nenhuma instância saudável.
var ErrNoHealthyInstance = errors.New("no healthy instance")

// DiscoverHealthy escolhe ao acaso uma instância saudável do serviço e retorna "host:porta".
func DiscoverHealthy(client *consul.Client, serviceName string) (string, error) {
	services, _, err := client.Health().Service(serviceName, "", true, nil)
	if err != nil {
		return "", fmt.Errorf("query service %s: %w", serviceName, err)
	}
	if len(services) == 0 {
		return "", fmt.Errorf("%w for %s", ErrNoHealthyInstance, serviceName)
	}

	s := services[rand.Intn(len(services))]
	addr := s.Service.Address
	if addr == "" {
		addr = s.Node.Address
	}
	return fmt.Sprintf("%s:%d", addr, s.Service.Port), nil
}
