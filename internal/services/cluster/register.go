package cluster

import (
	"fmt"
	"log"
	"os"

	consul "github.com/hashicorp/consul/api"
)

// Registration descreve a instância do servidor de duelo anunciada no Consul.
type Registration struct {
	ServiceName string
	Port        int
	// Hostname usado no ID do serviço e na URL do health check. Vazio usa o do processo.
	Hostname string
	Tags     []string
}

// Register anuncia o serviço com um check HTTP em /health e retorna o ID registrado.
func Register(client *consul.Client, reg Registration) (string, error) {
	hostname := reg.Hostname
	if hostname == "" {
		hostname = os.Getenv("HOSTNAME")
	}
	if hostname == "" {
		hostname, _ = os.Hostname()
	}
	serviceID := fmt.Sprintf("%s-%s-%d", reg.ServiceName, hostname, reg.Port)

	registration := &consul.AgentServiceRegistration{
		ID:   serviceID,
		Name: reg.ServiceName,
		Port: reg.Port,
		Tags: reg.Tags,
		// O agente usa o IP do contêiner que faz o registro.
		Check: &consul.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/health", hostname, reg.Port),
			Timeout:                        "5s",
			Interval:                       "10s",
			DeregisterCriticalServiceAfter: "1m",
		},
	}

	if err := client.Agent().ServiceRegister(registration); err != nil {
		return "", fmt.Errorf("register service %s: %w", serviceID, err)
	}
	log.Printf("[Cluster] Serviço '%s' registrado no Consul com ID: %s", reg.ServiceName, serviceID)
	return serviceID, nil
}

// Deregister remove o serviço do agente local.
func Deregister(client *consul.Client, serviceID string) error {
	if err := client.Agent().ServiceDeregister(serviceID); err != nil {
		return fmt.Errorf("deregister service %s: %w", serviceID, err)
	}
	log.Printf("[Cluster] Serviço %s removido do Consul.", serviceID)
	return nil
}
