package schedule

import "time"

// Domingo é o dia de descanso semanal da barbearia.
const RestDay = time.Sunday

// Janela padrão de dias selecionáveis no wizard.
const DefaultWindowDays = 14

// SelectableDays gera os próximos count dias de atendimento a partir de
// hoje, pulando o dia de descanso, em ordem cronológica.
func SelectableDays(now time.Time, count int) []time.Time {
	days := make([]time.Time, 0, count)
	cur := DayOf(now)
	for len(days) < count {
		if cur.Weekday() != RestDay {
			days = append(days, cur)
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}

// StepDay anda offset posições na janela gerada, travando nas duas pontas:
// antes do primeiro dia ou depois do último o passo é no-op.
func StepDay(days []time.Time, current time.Time, offset int) time.Time {
	if len(days) == 0 {
		return current
	}

	idx := -1
	for i, d := range days {
		if SameDay(d, current) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return days[0]
	}

	next := idx + offset
	if next < 0 || next >= len(days) {
		return days[idx]
	}
	return days[next]
}
