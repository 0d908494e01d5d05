// Package mirror defines the regional package mirrors and generates
// install commands against them.
package mirror

// Mirror is one package-index mirror: a display label and the index base
// URL passed to pip via -i.
type Mirror struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Defaults returns the built-in mirror list. Order is display order.
func Defaults() []Mirror {
	return []Mirror{
		{Name: "阿里云镜像站", URL: "https://mirrors.aliyun.com/pypi/simple"},
		{Name: "中国科学技术大学镜像站", URL: "https://pypi.mirrors.ustc.edu.cn/simple"},
		{Name: "腾讯云镜像站", URL: "https://mirrors.cloud.tencent.com/pypi/simple/"},
		{Name: "上海交通大学镜像站", URL: "https://mirror.sjtu.edu.cn/pypi/web/simple/"},
	}
}

// Command returns the install command for pkg against this mirror, or ""
// when pkg is empty. Callers suppress display of empty commands.
func (m Mirror) Command(pkg string) string {
	if pkg == "" {
		return ""
	}
	return "pip install -i " + m.URL + " " + pkg
}
