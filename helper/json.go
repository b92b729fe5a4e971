package helper

import "encoding/json"

// ToJSON 把任意值序列化为缩进的 JSON 字符串，失败时返回空串
func ToJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
