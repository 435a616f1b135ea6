package config

import (
	"fmt"
	"net/url"
	"time"
)

type config struct {
	Server     server     `mapstructure:"server"`
	Mysql      mysql      `mapstructure:"mysql"`
	Redis      redis      `mapstructure:"redis"`
	RabbitMq   rabbitmq   `mapstructure:"rabbitmq"`
	Minio      minio      `mapstructure:"minio"`
	S3         s3         `mapstructure:"s3"`
	Blob       blob       `mapstructure:"blob"`
	Jwt        jwt        `mapstructure:"jwt"`
	Auth       auth       `mapstructure:"auth"`
	Jaeger     jaeger     `mapstructure:"jaeger"`
	Engagement engagement `mapstructure:"engagement"`
	Sentinel   sentinel   `mapstructure:"sentinel"`
	Metrics    metrics    `mapstructure:"metrics"`
	Snowflake  snowflake  `mapstructure:"snowflake"`
}

type server struct {
	Addr          string   `mapstructure:"addr"`
	MaxBodyMB     int      `mapstructure:"max_body_mb"`
	CorsOrigins   []string `mapstructure:"cors_origins"`
	StorageMemory bool     `mapstructure:"storage_memory"`
}

type mysql struct {
	Addr     string `mapstructure:"addr"`
	Database string `mapstructure:"database"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Charset  string `mapstructure:"charset"`
}

func (m mysql) DSN() string {
	charset := m.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=True&loc=Local",
		m.Username, m.Password, m.Addr, m.Database, charset)
}

type redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type rabbitmq struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// URL is empty when no broker is configured.
func (r rabbitmq) URL() string {
	if r.Addr == "" {
		return ""
	}
	u := url.URL{Scheme: "amqp", User: url.UserPassword(r.Username, r.Password), Host: r.Addr, Path: "/"}
	return u.String()
}

type minio struct {
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	UseSSL     bool   `mapstructure:"use_ssl"`
	Bucket     string `mapstructure:"bucket"`
	Region     string `mapstructure:"region"`
	PublicBase string `mapstructure:"public_base"`
}

type s3 struct {
	Bucket string `mapstructure:"bucket"`
	Region string `mapstructure:"region"`
}

type blob struct {
	Backend string `mapstructure:"backend"`
	TmpDir  string `mapstructure:"tmp_dir"`
}

type jwt struct {
	Secret  string        `mapstructure:"secret"`
	Realm   string        `mapstructure:"realm"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type auth struct {
	DevHeader bool `mapstructure:"dev_header"`
}

type jaeger struct {
	AgentAddr    string  `mapstructure:"agent_addr"`
	SamplerParam float64 `mapstructure:"sampler_param"`
}

type engagement struct {
	AllowSelfSubscribe bool          `mapstructure:"allow_self_subscribe"`
	LockTTL            time.Duration `mapstructure:"lock_ttl"`
	CountCacheTTL      time.Duration `mapstructure:"count_cache_ttl"`
}

type sentinel struct {
	ToggleQPS float64 `mapstructure:"toggle_qps"`
}

type metrics struct {
	Addr string `mapstructure:"addr"`
}

type snowflake struct {
	WorkerID     int64 `mapstructure:"worker_id"`
	DatacenterID int64 `mapstructure:"datacenter_id"`
}
