package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/markusressel/fanplate/internal/api"
	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/markusressel/fanplate/internal/control"
	"github.com/markusressel/fanplate/internal/link"
	"github.com/markusressel/fanplate/internal/pwm"
	"github.com/markusressel/fanplate/internal/sensors"
	"github.com/markusressel/fanplate/internal/statistics"
	"github.com/markusressel/fanplate/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RunDaemon() {
	config := configuration.CurrentConfig

	if config.Pwm.Rpio != nil && getProcessOwner() != "root" {
		ui.Fatal("Hardware PWM requires root permissions to access the GPIO memory, please run fanplate as root")
	}

	port, err := link.OpenSerial(config.Serial)
	if err != nil {
		ui.Fatal("Unable to open serial port '%s': %v", config.Serial.Port, err)
	}
	defer port.Close()

	output, err := pwm.NewOutput(config.Pwm)
	if err != nil {
		ui.Fatal("Unable to process pwm configuration: %v", err)
	}
	defer output.Close()

	contr, err := InitializeController(config, port, output)
	if err != nil {
		ui.Fatal("Unable to initialize controller: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	{
		if config.Statistics.Enabled {
			// === Prometheus Exporter
			statisticsPort := config.Statistics.Port
			if statisticsPort <= 0 || statisticsPort >= 65535 {
				statisticsPort = 9000
			}
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			server := &http.Server{Addr: fmt.Sprintf(":%d", statisticsPort), Handler: mux}

			g.Add(func() error {
				ui.Info("Statistics server listening on :%d", statisticsPort)
				err := server.ListenAndServe()
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}, func(err error) {
				ui.Info("Stopping statistics server...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics server: " + err.Error())
				} else {
					ui.Info("Statistics server stopped.")
				}
			})
		}
	}
	{
		if config.Api.Enabled {
			// === REST Api
			rest := api.CreateRestService()
			addr := fmt.Sprintf("%s:%d", config.Api.Host, config.Api.Port)

			g.Add(func() error {
				ui.Info("REST api listening on %s", addr)
				err := rest.Start(addr)
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}, func(err error) {
				ui.Info("Stopping REST api...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := rest.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping REST api: " + err.Error())
				} else {
					ui.Info("REST api stopped.")
				}
			})
		}
	}
	{
		// === control loop
		g.Add(func() error {
			err := contr.Run(ctx)
			ui.Info("Controller %s stopped.", contr.GetId())
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Something went wrong: %v", err)
			}
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		done := make(chan struct{})

		g.Add(func() error {
			select {
			case <-sig:
				ui.Info("Received SIGTERM signal, exiting...")
			case <-done:
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			close(done)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
	}
}

// InitializeController creates the controller described by config, registers it
// and its metrics collector. Telemetry is written to the given link.
func InitializeController(config configuration.Configuration, port io.ReadWriter, output pwm.Output) (*control.Controller, error) {
	source, err := NewSource(config, port)
	if err != nil {
		return nil, err
	}

	options := control.OptionsFromConfig(config)
	reporter := control.NewReporter(port)

	contr, err := control.NewController(options, source, output, reporter, control.SystemClock{})
	if err != nil {
		return nil, err
	}
	control.ControllerMap.Set(contr.GetId(), contr)

	collector := statistics.NewControllerCollector([]*control.Controller{contr})
	statistics.Register(collector)

	return contr, nil
}

// NewSource creates the command source of the configured variant
func NewSource(config configuration.Configuration, port io.Reader) (control.Source, error) {
	switch config.Variant {
	case configuration.VariantSerial:
		return control.NewSerialSource(port, config.Serial.BufferSize, config.Directives), nil
	case configuration.VariantSensor:
		sensor, err := sensors.NewSensor(config.Sensor)
		if err != nil {
			return nil, err
		}
		mapper := control.NewAngleMapper(control.BandsFromConfig(config.Sensor.Bands))
		return control.NewSensorSource(sensor, mapper), nil
	}
	return nil, fmt.Errorf("unsupported variant '%s'", config.Variant)
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
		os.Exit(1)
	}
	return strings.TrimSpace(string(stdout))
}
