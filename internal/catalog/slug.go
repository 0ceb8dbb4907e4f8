package catalog

import "strings"

// Slugify 归一化分类名：小写、连续空白折叠为单个连字符
// 分类匹配的唯一归一化规则，路由参数与商品分类字段都经由它比较。
func Slugify(category string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(category)))
	return strings.Join(fields, "-")
}
