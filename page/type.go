package page

// Status 页面的发布状态
type Status string

const (
	StatusPublished Status = "published"
	StatusHidden    Status = "hidden"
	StatusDraft     Status = "draft"
)

// Page 表示层级树中的一个页面或目录占位节点
type Page struct {
	Name          string // 稳定标识，由标题 slug 化得到，不含序号前缀
	Order         string // 文件名中的数字序号，仅用于排序展示
	Title         string // 人类可读标题，可被元数据覆盖
	Lang          string // 语言标签
	InDefaultLang bool   // 是否为站点默认语言
	Virtual       bool   // 目录占位节点
	Status        Status
	Content       string
	SourcePath    string
	Parent        *Page // 回溯引用，仅用于向上遍历，不拥有生命周期

	subPages *orderedPages
	slug     string // 显式 slug 覆盖，为空时按层级链派生
}

// Crumb 面包屑导航中的一项
type Crumb struct {
	URL   string
	Title string
}

// Reader 外部内容读取器：解析一个内容文件并返回填充好的页面节点
type Reader interface {
	Read(basePath, relPath string) (*Page, error)
}

// Validator 外部有效性检查：返回 false 的页面会被扫描器丢弃
type Validator func(p *Page, relPath string) bool

// VisitorFunc 定义了访问节点的函数类型
type VisitorFunc func(p *Page, depth int) error
