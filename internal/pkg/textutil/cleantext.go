package textutil

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	controlRegex    = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	decEntityRegex  = regexp.MustCompile(`&#(\d+);`)
	hexEntityRegex  = regexp.MustCompile(`&#[xX]([0-9a-fA-F]+);`)
	numberRegex     = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	intRegex        = regexp.MustCompile(`(\d+)`)
)

// 常見具名實體；&amp; 必須最先解碼，雙重轉義（&amp;#039;）才能還原
var namedEntities = []struct{ entity, text string }{
	{"&quot;", `"`},
	{"&apos;", "'"},
	{"&lsquo;", "'"},
	{"&rsquo;", "'"},
	{"&#39;", "'"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&nbsp;", " "},
}

// CleanText 清理文字：壓縮空白與控制字元、解碼 HTML 實體、去除前後空白
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	result := controlRegex.ReplaceAllString(text, " ")
	result = whitespaceRegex.ReplaceAllString(result, " ")
	result = strings.TrimSpace(result)

	// 先解碼 &amp;，讓 &amp;#039; 這類雙重轉義可以繼續被解析
	result = strings.ReplaceAll(result, "&amp;", "&")

	// 解碼數字實體（十進位與十六進位）
	result = decEntityRegex.ReplaceAllStringFunc(result, func(m string) string {
		code, err := strconv.Atoi(decEntityRegex.FindStringSubmatch(m)[1])
		if err != nil {
			return m
		}
		return string(rune(code))
	})
	result = hexEntityRegex.ReplaceAllStringFunc(result, func(m string) string {
		code, err := strconv.ParseInt(hexEntityRegex.FindStringSubmatch(m)[1], 16, 32)
		if err != nil {
			return m
		}
		return string(rune(code))
	})

	// 解碼常見具名實體
	for _, e := range namedEntities {
		result = strings.ReplaceAll(result, e.entity, e.text)
	}

	return strings.TrimSpace(result)
}

// CleanURL 驗證並解析網址：支援協議相對（//）、根相對（/）與相對路徑
// 解析完仍不是絕對網址就回傳 false
func CleanURL(raw string, baseURL string) (string, bool) {
	if raw == "" {
		return "", false
	}

	switch {
	case strings.HasPrefix(raw, "//"):
		raw = "https:" + raw
	case strings.HasPrefix(raw, "/") && baseURL != "":
		base, err := url.Parse(baseURL)
		if err != nil {
			return "", false
		}
		raw = base.Scheme + "://" + base.Host + raw
	case !strings.HasPrefix(raw, "http"):
		if baseURL == "" {
			return "", false
		}
		base, err := url.Parse(baseURL)
		if err != nil {
			return "", false
		}
		ref, err := url.Parse(raw)
		if err != nil {
			return "", false
		}
		raw = base.ResolveReference(ref).String()
	}

	parsed, err := url.Parse(raw)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return "", false
	}
	return parsed.String(), true
}

// ExtractNumber 取出文字中第一個數字（整數或小數）
func ExtractNumber(text string) (float64, bool) {
	m := numberRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FirstInt 取出文字中第一個整數
func FirstInt(text string) (int, bool) {
	m := intRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
