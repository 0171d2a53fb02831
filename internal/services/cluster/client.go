package cluster

import (
	"errors"
	"fmt"
	"log"
	"strings"

	consul "github.com/hashicorp/consul/api"
)

// ErrNoConsulNode é retornado quando nenhum dos endereços responde.
var ErrNoConsulNode = errors.New("no consul node available")

// NewConsulClient tenta cada endereço da lista (separada por vírgula) até
// encontrar um agente que responda com um líder eleito.
func NewConsulClient(addrs string) (*consul.Client, error) {
	for _, node := range strings.Split(addrs, ",") {
		node = strings.TrimSpace(node)
		if node == "" {
			continue
		}
		cfg := consul.DefaultConfig()
		cfg.Address = node

		client, err := consul.NewClient(cfg)
		if err != nil {
			log.Printf("[Cluster] Falha ao tentar %s: %v", node, err)
			continue
		}

		if _, err := client.Status().Leader(); err != nil {
			log.Printf("[Cluster] %s não respondeu ao health check: %v", node, err)
			continue
		}

		log.Printf("[Cluster] Conectado ao nó Consul: %s", node)
		return client, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoConsulNode, addrs)
}
