//go:build mobile

// embed.go - 移动端配置嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// go:embed 不能引用上级目录，构建前先复制默认配置：
//
//	mkdir -p mobile/data && cp data/apartment.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/apartment.yaml
var dataFS embed.FS
