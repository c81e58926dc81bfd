package cmd

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avagut/authhub/internal/bootstrap"
	"github.com/avagut/authhub/internal/conf"
	"github.com/avagut/authhub/internal/db"
	"github.com/avagut/authhub/server"
	auth "github.com/avagut/authhub/server/oauth2"
	"github.com/quic-go/quic-go/http3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start authhub server",
	Long:  `Start authhub server`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return bootstrap.New(bootstrap.WithContext(cmd.Context())).Add(
			bootstrap.InitConfig,
			bootstrap.InitLog,
			bootstrap.InitGinMode,
			bootstrap.InitDatabase,
		).Run()
	},
	Run: Server,
}

func Server(_ *cobra.Command, _ []string) {
	registry, err := auth.NewRegistryFromConfig(conf.Conf.OAuth2.Providers)
	if err != nil {
		log.Fatalf("init oauth2 providers error: %v", err)
	}
	if len(registry.Enabled()) == 0 {
		log.Warn("no oauth2 provider enabled, nobody can log in")
	}

	addr := fmt.Sprintf("%s:%d", conf.Conf.Server.Listen, conf.Conf.Server.Port)
	serverListener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Panic(err)
	}

	e := server.NewAndInit(registry)
	switch {
	case conf.Conf.Server.CertPath != "" && conf.Conf.Server.KeyPath != "":
		go func() {
			err := http.ServeTLS(serverListener, e.Handler(), conf.Conf.Server.CertPath, conf.Conf.Server.KeyPath)
			if err != nil {
				log.Fatalf("http server error: %v", err)
			}
		}()
		if conf.Conf.Server.Quic {
			go func() {
				err := http3.ListenAndServeQUIC(addr, conf.Conf.Server.CertPath, conf.Conf.Server.KeyPath, e.Handler())
				if err != nil {
					log.Fatalf("http3 server error: %v", err)
				}
			}()
			log.Infof("quic run on udp://%s", addr)
		}
		log.Infof("website run on https://%s", addr)
	case conf.Conf.Server.CertPath == "" && conf.Conf.Server.KeyPath == "":
		go func() {
			if err := e.RunListener(serverListener); err != nil {
				log.Fatalf("http server error: %v", err)
			}
		}()
		log.Infof("website run on http://%s", addr)
	default:
		log.Panic("cert and key must be both set")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	db.Close()
}

func init() {
	RootCmd.AddCommand(ServerCmd)
}
