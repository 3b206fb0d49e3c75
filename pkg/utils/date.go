package utils

import (
	"fmt"
	"strconv"
	"strings"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ParseMonth aceita o índice do mês (0-11) recebido na URL
func ParseMonth(value string) (int, error) {
	month, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("mês inválido %q: %w", value, err)
	}

	if month < 0 || month > 11 {
		return 0, fmt.Errorf("mês fora do intervalo 0-11: %d", month)
	}

	return month, nil
}

func MonthName(month int) string {
	if month < 0 || month > 11 {
		return ""
	}
	return monthNames[month]
}
