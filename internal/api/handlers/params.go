package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var errMissingParam = errors.New("missing parameter")

// PathID читает положительный int64 из переменной маршрута
func PathID(vars map[string]string, name string) (int64, error) {
	return parsePositive(vars[name])
}

// QueryID читает необязательный положительный int64 из query. Пустое значение - nil.
func QueryID(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := parsePositive(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseIDList разбирает "1,2,2" в []int64 с сохранением порядка и повторов
func ParseIDList(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errMissingParam
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := parsePositive(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseDate разбирает YYYY-MM-DD как полночь в часовом поясе loc
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errMissingParam
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(domain.DateFormat, raw, loc)
}

func parsePositive(raw string) (int64, error) {
	if raw == "" {
		return 0, errMissingParam
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", id)
	}
	return id, nil
}
