package config

import (
	"fmt"
	"net/url"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Database 数据库配置，driver 决定使用哪一组字段
type Database struct {
	Driver   string `json:"driver" yaml:"driver"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	Charset  string `json:"charset" yaml:"charset"`
	// Path sqlite 文件路径
	Path string `json:"path" yaml:"path"`
}

// Dsn 连接串
func (d *Database) Dsn() string {
	switch d.Driver {
	case DriverMySQL:
		charset := d.Charset
		if charset == "" {
			charset = "utf8mb4"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
			d.Username, d.Password, d.Host, d.Port, d.Database, charset)
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(d.Username, d.Password),
			Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
			Path:     d.Database,
			RawQuery: "sslmode=disable",
		}
		return u.String()
	default:
		return d.Path
	}
}
