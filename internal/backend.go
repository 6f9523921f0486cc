package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/brev-dev/PiFan/internal/api"
	"github.com/brev-dev/PiFan/internal/configuration"
	"github.com/brev-dev/PiFan/internal/controller"
	"github.com/brev-dev/PiFan/internal/curves"
	"github.com/brev-dev/PiFan/internal/pwm"
	"github.com/brev-dev/PiFan/internal/sensors"
	"github.com/brev-dev/PiFan/internal/statistics"
	"github.com/brev-dev/PiFan/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RunDaemon() {
	if getProcessOwner() != "root" {
		ui.Fatal("Fan control requires root permissions to access GPIO hardware, please run pifan as root")
	}

	fanController := initializeObjects()

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		enabled := configuration.CurrentConfig.Statistics.Enabled
		if enabled {
			// === Prometheus Exporter
			port := configuration.CurrentConfig.Statistics.Port
			if port <= 0 || port >= 65535 {
				port = 9000
			}
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			server := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

			addServerActor(&g, "statistics server", server.ListenAndServe, server.Shutdown)
		}
	}
	{
		enabled := configuration.CurrentConfig.Api.Enabled
		if enabled {
			// === REST Api
			apiConfig := configuration.CurrentConfig.Api
			addr := fmt.Sprintf("%s:%d", apiConfig.Host, apiConfig.Port)
			restServer := api.CreateRestService(fanController)

			addServerActor(&g, "REST api server", func() error {
				return restServer.Start(addr)
			}, restServer.Shutdown)
		}
	}
	{
		// === fan controller
		g.Add(func() error {
			err := fanController.Run(ctx)
			ui.Info("Fan controller stopped.")
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

		g.Add(func() error {
			<-sig
			ui.Info("Received exit signal, shutting down...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// addServerActor runs an http listener as an actor of the run group.
// listen blocks until shutdown closes the server, so the shutdown must
// happen in the interrupt function, otherwise the execute function never
// returns and g.Run() hangs after the signal actor stops.
func addServerActor(g *run.Group, name string, listen func() error, shutdown func(context.Context) error) {
	g.Add(func() error {
		if err := listen(); err != nil && err != http.ErrServerClosed {
			ui.Error("Cannot start %s (%s)", name, err.Error())
			return err
		}
		return nil
	}, func(err error) {
		timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer timeoutCancel()
		if err := shutdown(timeoutCtx); err != nil {
			ui.Warning("Error stopping %s: %v", name, err)
		} else {
			ui.Info("Stopped %s.", name)
		}
	})
}

func initializeObjects() controller.FanController {
	config := configuration.CurrentConfig

	sensor, err := sensors.NewSensor(config.Sensor)
	if err != nil {
		ui.Fatal("Unable to process sensor configuration: %v", err)
	}
	if currentValue, err := sensor.GetValue(); err != nil {
		ui.Warning("Error reading sensor %s: %v", sensor.GetId(), err)
	} else {
		sensor.SetMovingAvg(currentValue)
	}
	sensors.RegisterSensor(sensor)

	sensorCollector := statistics.NewSensorCollector([]sensors.Sensor{sensor})
	statistics.Register(sensorCollector)

	curve, err := curves.NewSpeedCurve(config.Curve)
	if err != nil {
		ui.Fatal("Unable to process curve configuration: %v", err)
	}
	curves.RegisterSpeedCurve(curve)

	output, err := pwm.NewOutput(config.Pwm)
	if err != nil {
		ui.Fatal("Unable to initialize pwm output: %v", err)
	}

	fanController := controller.NewFanController(sensor, curve, output, config.Controller)

	controllerCollector := statistics.NewControllerCollector(fanController)
	statistics.Register(controllerCollector)

	return fanController
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
		os.Exit(1)
	}
	return strings.TrimSpace(string(stdout))
}
