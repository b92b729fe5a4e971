// lang 提供 CLI 文案的本地化支持，基于 go-i18n
package lang

import (
	"os"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sjzsdu/yeshu/share"
	"golang.org/x/text/language"
)

var (
	once      sync.Once
	localizer *i18n.Localizer
)

// T 翻译给定的文案，找不到翻译时原样返回
func T(msg string) string {
	once.Do(setup)
	if localizer == nil {
		return msg
	}
	translated, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: msg})
	if err != nil || translated == "" {
		return msg
	}
	return translated
}

// setup 构建语言包，语言由 YESHU_LANG 环境变量决定
func setup() {
	bundle := i18n.NewBundle(language.English)
	bundle.AddMessages(language.Chinese, chineseMessages()...)

	locale := os.Getenv(share.PREFIX + "LANG")
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	localizer = i18n.NewLocalizer(bundle, locale, language.English.String())
}

// SetLocale 显式切换语言，主要用于测试
func SetLocale(locale string) {
	bundle := i18n.NewBundle(language.English)
	bundle.AddMessages(language.Chinese, chineseMessages()...)
	localizer = i18n.NewLocalizer(bundle, locale, language.English.String())
	once.Do(func() {})
}

func chineseMessages() []*i18n.Message {
	pairs := map[string]string{
		"Yeshu command line tool":                        "Yeshu 命令行工具",
		"Build hierarchical page trees for static sites": "为静态站点构建层级页面树",
		"Print version information":                      "打印版本信息",
		"Print detailed version information of yeshu":    "打印 yeshu 的详细版本信息",
		"yeshu version":                                  "yeshu 版本",
		"Set config":                                     "设置配置",
		"Set global configuration":                       "设置全局配置",
		"List all configurations":                        "列出所有配置项",
		"Current configurations:":                        "当前配置:",
		"Content directory path":                         "内容目录路径",
		"Default language":                               "默认语言",
		"Languages recognized in file names":             "文件名中可识别的语言",
		"Directory names to exclude":                     "需要排除的目录名",
		"Git repository URL to clone and scan":           "要克隆并扫描的 Git 仓库地址",
		"Debug mode":                                     "调试模式",
		"Invalid arguments":                              "无效的参数",
		"Interactive session terminated":                 "交互会话已结束",
	}
	msgs := make([]*i18n.Message, 0, len(pairs))
	for id, other := range pairs {
		msgs = append(msgs, &i18n.Message{ID: id, Other: other})
	}
	return msgs
}
