package entity

import "time"

func testDate() time.Time {
	return time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
}
