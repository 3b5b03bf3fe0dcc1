package config

type OssConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Region   string `json:"region" yaml:"region"`
	Bucket   string `json:"bucket" yaml:"bucket"`
	// Prefix 数据集对象前缀，最终 key 为 <prefix>/<run_id>/<file>
	Prefix          string `json:"prefix" yaml:"prefix"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
