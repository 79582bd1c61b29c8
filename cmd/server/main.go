package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"liyu1981.xyz/altitude-guard/pkg/altitude"
	"liyu1981.xyz/altitude-guard/pkg/common"
	"liyu1981.xyz/altitude-guard/pkg/db"
	altitudeGrpc "liyu1981.xyz/altitude-guard/pkg/grpc"
	altitudeHttp "liyu1981.xyz/altitude-guard/pkg/http"
	"liyu1981.xyz/altitude-guard/pkg/location"
	"liyu1981.xyz/altitude-guard/pkg/mqttbridge"
	"liyu1981.xyz/altitude-guard/pkg/notify"
	"liyu1981.xyz/altitude-guard/pkg/store"
)

const mqttClientID = "altitude-guard"

func openKV() store.KV {
	storeType := common.GetEnvOr(common.EnvKeyTrekStoreType, "file")
	switch storeType {
	case "file":
		return store.NewGormKV(db.GetInstance(db.UseSqliteDialector()))
	case "memory":
		return store.NewGormKV(db.GetInstance(db.UseMemorySqliteDialector()))
	case "redis":
		client := store.ConnectRedis(os.Getenv(common.EnvKeyTrekRedisAddr), os.Getenv(common.EnvKeyTrekRedisPassword))
		if client == nil {
			log.Fatal("TREK_STORE_TYPE=redis needs TREK_REDIS_ADDR")
		}
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("redis not reachable: %v", err)
		}
		return store.NewRedisKV(client)
	default:
		log.Fatal("Unknown TREK_STORE_TYPE: " + storeType)
	}
	return nil
}

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	logger := common.GetLogger()
	defer common.SyncLogger()

	kv := openKV()

	grpcHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyTrekGrpcHostPort))
	httpHostPort := common.GetEnvOr(common.EnvKeyTrekHttpHostPort, ":1080")

	var defaultRate, notifyRate float64
	var defaultBurst, notifyBurst, fixTimeoutSeconds int

	if defaultRate, err = common.GetEnvFloat64(common.EnvKeyTrekDefaultRate, 10); err != nil {
		log.Fatal("Invalid TREK_DEFAULT_RATE, should be a float64 value")
	}
	if defaultBurst, err = common.GetEnvInt(common.EnvKeyTrekDefaultBurst, 20); err != nil {
		log.Fatal("Invalid TREK_DEFAULT_BURST, should be an int value")
	}
	if notifyRate, err = common.GetEnvFloat64(common.EnvKeyTrekNotifyRate, 1.0/300); err != nil {
		log.Fatal("Invalid TREK_NOTIFY_RATE, should be a float64 value")
	}
	if notifyBurst, err = common.GetEnvInt(common.EnvKeyTrekNotifyBurst, 1); err != nil {
		log.Fatal("Invalid TREK_NOTIFY_BURST, should be an int value")
	}
	if fixTimeoutSeconds, err = common.GetEnvInt(common.EnvKeyTrekFixTimeoutSeconds, 30); err != nil {
		log.Fatal("Invalid TREK_FIX_TIMEOUT_SECONDS, should be an int value")
	}

	// The phone pushes fixes unless a simulated climb is requested.
	var provider altitude.LocationProvider
	var latest *location.Latest
	switch source := common.GetEnvOr(common.EnvKeyTrekLocationSource, "push"); source {
	case "push":
		latest = location.NewLatest(location.DefaultMaxFixAge)
		provider = latest
	case "simulated":
		provider = location.NewSimulated(2800, 150, 5400, uint64(time.Now().UnixNano()))
	default:
		log.Fatal("Unknown TREK_LOCATION_SOURCE: " + source)
	}

	notifier := notify.Fanout{notify.LogNotifier{}}

	var mqttClient mqtt.Client
	if broker := strings.TrimSpace(os.Getenv(common.EnvKeyTrekMqttBroker)); broker != "" {
		locationTopic := strings.TrimSpace(os.Getenv(common.EnvKeyTrekMqttLocationTopic))
		mqttClient, err = mqttbridge.Connect(broker, mqttClientID, func(client mqtt.Client) {
			if latest == nil || locationTopic == "" {
				return
			}
			if err := location.SubscribeMQTT(client, locationTopic, latest); err != nil {
				logger.Error("Failed to subscribe location topic", zap.String("topic", locationTopic), zap.Error(err))
			}
		})
		if err != nil {
			log.Fatalf("mqtt bridge failed: %v", err)
		}
		defer mqttbridge.Disconnect(mqttClient)

		if alertTopic := strings.TrimSpace(os.Getenv(common.EnvKeyTrekMqttAlertTopic)); alertTopic != "" {
			notifier = append(notifier, notify.NewMQTTNotifier(mqttClient, alertTopic))
		}
	}

	engine := altitude.NewEngine(context.Background(), store.NewRepositories(kv), altitude.EngineOpts{
		Location:      provider,
		Notifier:      notifier,
		NotifyLimiter: altitude.NewRateLimiterStore(rate.Limit(notifyRate), notifyBurst),
		FixTimeout:    time.Duration(fixTimeoutSeconds) * time.Second,
	})
	defer engine.Close()

	if engine.Resume(context.Background()) {
		logger.Info("Tracking resumed from persisted settings")
	}

	limiterDesc := zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst))

	if grpcHostPort != "" {
		logger.Info("Starting gRPC server on port " + grpcHostPort)
		go func() {
			altitudeGrpcServer := altitudeGrpc.AltitudeServer{
				Engine:           engine,
				Location:         latest,
				RateLimiterStore: altitude.NewRateLimiterStore(rate.Limit(defaultRate), defaultBurst),
			}
			interceptor := altitudeGrpcServer.CreateRateLimitInterceptor(altitudeGrpc.WriteMethods)
			s := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
			altitudeGrpc.RegisterAltitudeServiceServer(s, &altitudeGrpcServer)
			logger.Info("gRPC server created with:", limiterDesc)

			listener, err := net.Listen("tcp", grpcHostPort)
			if err != nil {
				log.Fatalf("failed to listen: %v", err)
			}

			logger.Info("start gRPC server on " + grpcHostPort)
			if err := s.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
	}

	rs := &altitudeHttp.RestfulServer{
		Server:           gin.Default(),
		Engine:           engine,
		Location:         latest,
		RateLimiterStore: altitude.NewRateLimiterStore(rate.Limit(defaultRate), defaultBurst),
	}
	rs.Setup()

	logger.Info("http server created with:", limiterDesc)

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
