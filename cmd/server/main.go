package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"duel/internal/config"
	"duel/internal/network"
	"duel/internal/services/cluster"
	"duel/internal/services/feed"
	"duel/internal/session"

	consul "github.com/hashicorp/consul/api"
)

func main() {
	// 1. CARREGA A CONFIGURAÇÃO
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fatal: Falha ao carregar configuração: %v", err)
	}
	log.Printf("[Main] Configuração carregada: ServiceName=%s, Address=%s, Consul=%q, NATS=%q",
		cfg.ServiceName, cfg.Address(), cfg.ConsulAddr, cfg.NATSURL)

	health := cluster.NewHealthAggregator()

	// 2. FEED DE EVENTOS (opcional)
	var publisher feed.Publisher = feed.Nop{}
	if cfg.NATSURL != "" {
		natsPublisher, err := feed.Connect(cfg.NATSURL, cfg.FeedSubject, cfg.ServiceName)
		if err != nil {
			log.Fatalf("Fatal: Falha ao conectar ao NATS: %v", err)
		}
		health.AddCheck("nats", natsPublisher.Check)
		publisher = natsPublisher
		log.Printf("[Main] Publicando eventos em %s.*", cfg.FeedSubject)
	}
	defer publisher.Close()

	// 3. LÓGICA DO JOGO E SERVIDOR DE REDE
	gameHandler := session.NewGameHandler(session.WithPublisher(publisher))
	server := network.NewServer(gameHandler)
	server.Handle("/health", health)
	if cfg.StaticDir != "" {
		server.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
		log.Printf("[Main] Servindo arquivos estáticos de %s", cfg.StaticDir)
	}

	// 4. REGISTRO NO CONSUL (opcional)
	var consulClient *consul.Client
	var serviceID string
	if cfg.ConsulAddr != "" {
		consulClient, err = cluster.NewConsulClient(cfg.ConsulAddr)
		if err != nil {
			log.Fatalf("Fatal: Falha ao conectar ao Consul: %v", err)
		}
		serviceID, err = cluster.Register(consulClient, cluster.Registration{
			ServiceName: cfg.ServiceName,
			Port:        cfg.Port,
			Tags:        []string{"websocket"},
		})
		if err != nil {
			log.Fatalf("Fatal: Falha ao registrar serviço no Consul: %v", err)
		}
	}

	// 5. INICIA O SERVIDOR E ESPERA O SINAL DE PARADA
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Listen(cfg.Address())
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Falha fatal ao iniciar o servidor de rede: %v", err)
		}
	case sig := <-stop:
		log.Printf("[Main] Sinal %s recebido, encerrando.", sig)
	}

	if consulClient != nil {
		if err := cluster.Deregister(consulClient, serviceID); err != nil {
			log.Printf("[Main] %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[Main] Erro ao encerrar o servidor HTTP: %v", err)
	}
}
