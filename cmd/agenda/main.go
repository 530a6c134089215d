package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vincfleurette/agenda-spv/internal/config"
	"github.com/vincfleurette/agenda-spv/internal/server"
	"github.com/vincfleurette/agenda-spv/internal/util"
)

var (
	port    = flag.Int("port", 0, "port du serveur (prioritaire sur config.toml sauf si port y est défini)")
	devMode = flag.Bool("dev", false, "mode développement")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Agenda SPV - Planning des gardes en .ics")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("chargement de la configuration impossible, valeurs par défaut: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Serveur en écoute sur le port %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("démarrage du serveur impossible: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("Ouverture du navigateur: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("Ouverture automatique impossible, rendez-vous sur: %s\n", url)
		}
	} else {
		fmt.Printf("Mode développement: %s\n", url)
	}

	fmt.Println("\nCtrl+C pour arrêter le serveur...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nArrêt du serveur.")
}
