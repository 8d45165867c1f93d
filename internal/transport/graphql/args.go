package graphql

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// inputObject достаёт обязательный аргумент input мутации.
func inputObject(args map[string]interface{}) (map[string]interface{}, error) {
	input, ok := args["input"].(map[string]interface{})
	if !ok {
		return nil, errors.New("input is required")
	}
	return input, nil
}

func stringArg(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	v, _ := m[key].(string)
	return v
}

func intArg(m map[string]interface{}, key string) int {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// floatArg возвращает числовой аргумент; библиотека может отдать Float
// и как float64, и как int для целочисленного литерала.
func floatArg(m map[string]interface{}, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// decimalArg переводит Float из API в точное десятичное значение.
func decimalArg(m map[string]interface{}, key string) decimal.Decimal {
	if v, ok := floatArg(m, key); ok {
		return decimal.NewFromFloat(v)
	}
	return decimal.Zero
}

func decimalPtrArg(m map[string]interface{}, key string) *decimal.Decimal {
	if v, ok := floatArg(m, key); ok {
		d := decimal.NewFromFloat(v)
		return &d
	}
	return nil
}

// timeArg принимает DateTime как time.Time (после коэрции скаляра)
// или как строку RFC3339 из переменных запроса.
func timeArg(m map[string]interface{}, key string) *time.Time {
	if m == nil {
		return nil
	}
	switch v := m[key].(type) {
	case time.Time:
		return &v
	case string:
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return &parsed
		}
	}
	return nil
}

func stringListArg(m map[string]interface{}, key string) []string {
	if m == nil {
		return nil
	}
	items, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
