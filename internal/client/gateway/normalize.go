package gateway

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// normalizeTanggalMasuk はサーバーが返す入社日文字列を time.Time に正規化します。
// エポックミリ秒の数値文字列、RFC3339、YYYY-MM-DD の順に解釈し、
// どれにも当てはまらない場合はゼロ値を返します。
func normalizeTanggalMasuk(raw string) time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}
	}

	if isDigits(trimmed) {
		millis, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return time.Time{}
		}
		return time.UnixMilli(millis).UTC()
	}

	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(dateLayout, trimmed); err == nil {
		return t
	}

	return time.Time{}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	start := 0
	if s[0] == '-' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}
	for _, r := range s[start:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
