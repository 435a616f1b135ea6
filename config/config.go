package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// Init loads config.yml from the usual search paths. Every key can be
// overridden by an environment variable, e.g. VIDTUBE_MYSQL_ADDR.
func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config.yml")
	for _, path := range []string{"../../config", "./config", "../config", "."} {
		v.AddConfigPath(path)
		absPath, _ := filepath.Abs(path)
		logrus.Debugf("Added config path: %s (absolute: %s)", path, absPath)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults and environment: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", v.ConfigFileUsed())
	}

	cfg, err := Load(v)
	if err != nil {
		logrus.Fatalf("config decode error: %v", err)
	}
	ConfigInfo = cfg

	logrus.Infof("Config loaded - MySQL: %s:%s@%s/%s",
		ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
	if ConfigInfo.Server.StorageMemory {
		logrus.Warn("server.storage_memory is set, entities live in process memory only")
	}
}

// Load decodes v on top of the defaults.
func Load(v *viper.Viper) (config, error) {
	setDefaults(v)
	v.SetEnvPrefix("VIDTUBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg config
	err := v.Unmarshal(&cfg)
	return cfg, err
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "0.0.0.0:8888")
	v.SetDefault("server.max_body_mb", 1024)
	v.SetDefault("server.cors_origins", []string{"http://localhost:8888"})
	v.SetDefault("server.storage_memory", false)

	v.SetDefault("mysql.addr", "127.0.0.1:3306")
	v.SetDefault("mysql.database", "vidtube")
	v.SetDefault("mysql.username", "vidtube")
	v.SetDefault("mysql.password", "")
	v.SetDefault("mysql.charset", "utf8mb4")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rabbitmq.addr", "")
	v.SetDefault("rabbitmq.username", "guest")
	v.SetDefault("rabbitmq.password", "guest")

	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket", "vidtube")
	v.SetDefault("minio.region", "us-east-1")
	v.SetDefault("minio.public_base", "")

	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.region", "us-east-1")

	v.SetDefault("blob.backend", "minio")
	v.SetDefault("blob.tmp_dir", os.TempDir())

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.realm", "vidtube")
	v.SetDefault("jwt.timeout", 24*time.Hour)
	v.SetDefault("auth.dev_header", false)

	v.SetDefault("jaeger.agent_addr", "")
	v.SetDefault("jaeger.sampler_param", 1.0)

	v.SetDefault("engagement.allow_self_subscribe", false)
	v.SetDefault("engagement.lock_ttl", 5*time.Second)
	v.SetDefault("engagement.count_cache_ttl", 10*time.Minute)

	v.SetDefault("sentinel.toggle_qps", 200.0)
	v.SetDefault("metrics.addr", ":6060")

	v.SetDefault("snowflake.worker_id", 1)
	v.SetDefault("snowflake.datacenter_id", 1)
}
