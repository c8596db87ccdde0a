package main

// checkResponse validates the decoded API response against the documented
// shape and returns the homework records in the order the server sent them.
func checkResponse(resp any) ([]map[string]any, error) {
	mapping, ok := resp.(map[string]any)
	if !ok {
		return nil, &ShapeError{Reason: "API response is not a mapping"}
	}

	raw, ok := mapping["homeworks"]
	if !ok {
		return nil, &ShapeError{Reason: `API response is missing the "homeworks" key`}
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, &ShapeError{Reason: `"homeworks" in the API response is not a list`}
	}

	homeworks := make([]map[string]any, 0, len(list))
	for _, item := range list {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, &ShapeError{Reason: "homework record is not a mapping"}
		}
		homeworks = append(homeworks, record)
	}

	return homeworks, nil
}

// currentDate extracts the optional cursor value from a validated response.
// Its absence is not an error; the poller falls back to wall-clock time.
func currentDate(resp any) (int64, bool) {
	mapping, ok := resp.(map[string]any)
	if !ok {
		return 0, false
	}
	// encoding/json decodes untyped numbers as float64.
	value, ok := mapping["current_date"].(float64)
	if !ok {
		return 0, false
	}
	return int64(value), true
}
