package share

// VERSION 版本号
const VERSION = "0.1.2"

// BUILDNAME 制品名称
const BUILDNAME = "yeshu"

const PREFIX = "YESHU_"

const PATH = ".yeshu"

// DEFAULT_LANG 站点默认语言
const DEFAULT_LANG = "en"

// ROOT_NAME 虚拟根节点的名称与标题
const ROOT_NAME = "index"
const ROOT_TITLE = "Home"
const ROOT_SLUG = "../index"

// PAGE_URL 页面 URL 模板，{hierarchy} 会被替换为层级路径
const PAGE_URL = "{hierarchy}.html"

// PAGE_LANG_URL 非默认语言页面的 URL 模板
const PAGE_LANG_URL = "{hierarchy}-{lang}.html"

// LANGUAGES 文件名后缀可识别的语言
var LANGUAGES = []string{"en", "de"}

// CONTENT_EXTENSIONS 作为内容页面处理的扩展名
var CONTENT_EXTENSIONS = []string{"md", "markdown", "mdown", "rst", "html", "htm"}

// STATIC_EXTENSIONS 静态资源扩展名，扫描时只登记不解析
var STATIC_EXTENSIONS = []string{
	"png", "jpeg", "jpg", "gif", "tif", "tiff",
	"doc", "docx", "xls",
	"pdf",
	"zip", "tar", "gz",
	"js",
}

// EXCLUDED_DIRS 扫描内容目录时默认排除的目录名
var EXCLUDED_DIRS = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	".vscode":      true,
	".idea":        true,
	".DS_Store":    true,
	"node_modules": true,
	"__pycache__":  true,
	"output":       true,
	"assets":       true,
}
