package service

import (
	"errors"
	"fmt"
	"time"
)

// ThrottledError возвращается, когда пользователь уже отправлял репорт по этому
// городу в текущем скользящем окне. Несет момент, когда можно повторить.
type ThrottledError struct {
	RetryAt time.Time
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("reporting throttled until %s", e.RetryAt.Format(time.RFC3339))
}

// ErrStateConflict сигнализирует о проигранной гонке при переходе состояния зоны.
// Вызывающий должен перечитать актуальное состояние, а не падать.
var ErrStateConflict = errors.New("danger zone state changed concurrently")

// ErrNoDestinations возвращается, когда не найден ни один безопасный пункт назначения
var ErrNoDestinations = errors.New("no safe destinations found")
