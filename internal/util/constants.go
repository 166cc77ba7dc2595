package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeText        = "text/plain"
	MimeJSON        = "application/json"
	MimeYAML        = "application/yaml"
	MimeOctetStream = "application/octet-stream"
)

// 问卷导入文件允许的扩展名
var AllowedBundleExtensions = []string{".yaml", ".yml"}

// 问卷导入文件大小上限
const MaxBundleSize = 1 << 20
