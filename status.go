package main

import "fmt"

// homeworkVerdicts maps every status the review API may report to the fixed
// sentence shown to the user. The vocabulary is closed: a status missing
// from this table is an error, never silently dropped.
var homeworkVerdicts = map[string]string{
	"approved":  "Работа проверена: ревьюеру всё понравилось. Ура!",
	"reviewing": "Работа взята на проверку ревьюером.",
	"rejected":  "Работа проверена: у ревьюера есть замечания.",
}

// parseStatus composes the notification text for one homework record.
// It is pure: same record in, byte-identical message out.
func parseStatus(homework map[string]any) (string, error) {
	name, ok := homework["homework_name"].(string)
	if !ok {
		return "", &ShapeError{Reason: `homework record is missing the "homework_name" key`}
	}
	status, ok := homework["status"].(string)
	if !ok {
		return "", &ShapeError{Reason: `homework record is missing the "status" key`}
	}

	verdict, ok := homeworkVerdicts[status]
	if !ok {
		return "", &UnknownStatusError{Status: status}
	}

	return fmt.Sprintf(`Изменился статус проверки работы "%s". %s`, name, verdict), nil
}
