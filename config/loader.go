package config

const (
	IDMapMemory = "memory"
	IDMapRedis  = "redis"
)

// LoaderConfig CSV 入库参数
type LoaderConfig struct {
	InputDir      string `json:"input_dir" yaml:"input_dir"`
	ProgressEvery int    `json:"progress_every" yaml:"progress_every"`
	// IDMap 源数据 id 到库内 id 的映射存储: memory | redis
	IDMap string `json:"idmap" yaml:"idmap"`
	// IDMapTTL redis 映射过期时间(秒)，0 表示不过期
	IDMapTTL int `json:"idmap_ttl" yaml:"idmap_ttl"`
	// DefaultPassword 导入用户的初始密码
	DefaultPassword string `json:"default_password" yaml:"default_password"`
}

func (l *LoaderConfig) applyDefaults() {
	if l.InputDir == "" {
		l.InputDir = "data/raw"
	}
	if l.ProgressEvery == 0 {
		l.ProgressEvery = 500
	}
	if l.IDMap == "" {
		l.IDMap = IDMapMemory
	}
	if l.DefaultPassword == "" {
		l.DefaultPassword = "defaultpassword123"
	}
}

func ProvideLoaderConfig(cfg *Config) *LoaderConfig {
	return cfg.Loader
}
