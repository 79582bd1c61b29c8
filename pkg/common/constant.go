package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyTrekStoreType     string = "TREK_STORE_TYPE"
	EnvKeyTrekDbPath        string = "TREK_DB_PATH"
	EnvKeyTrekRedisAddr     string = "TREK_REDIS_ADDR"
	EnvKeyTrekRedisPassword string = "TREK_REDIS_PASSWORD"

	EnvKeyTrekHttpHostPort string = "TREK_HTTP_HOST_PORT"
	EnvKeyTrekGrpcHostPort string = "TREK_GRPC_HOST_PORT"

	EnvKeyTrekDefaultRate  string = "TREK_DEFAULT_RATE"
	EnvKeyTrekDefaultBurst string = "TREK_DEFAULT_BURST"
	EnvKeyTrekNotifyRate   string = "TREK_NOTIFY_RATE"
	EnvKeyTrekNotifyBurst  string = "TREK_NOTIFY_BURST"

	EnvKeyTrekMqttBroker        string = "TREK_MQTT_BROKER"
	EnvKeyTrekMqttAlertTopic    string = "TREK_MQTT_ALERT_TOPIC"
	EnvKeyTrekMqttLocationTopic string = "TREK_MQTT_LOCATION_TOPIC"

	EnvKeyTrekLocationSource    string = "TREK_LOCATION_SOURCE"
	EnvKeyTrekFixTimeoutSeconds string = "TREK_FIX_TIMEOUT_SECONDS"

	EnvKeyTrekLogLevel string = "TREK_LOG_LEVEL"

	LoggerNameAltitudeCore  string = "altitude_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameMqttBridge    string = "mqtt_bridge"
	LoggerFieldCategory     string = "category"

	LoggerCategoryTracker  string = "tracker"
	LoggerCategoryEvent    string = "event"
	LoggerCategorySymptom  string = "symptom"
	LoggerCategorySettings string = "settings"
	LoggerCategoryProfile  string = "profile"
	LoggerCategoryStore    string = "store"
	LoggerCategoryNotify   string = "notify"
	LoggerCategoryLocation string = "location"
)
