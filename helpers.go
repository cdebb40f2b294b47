package capmon

import "time"

// Int64ToTime returns UTC time.Time from unix timestamp
func Int64ToTime(timeStamp int64) time.Time {
	return time.Unix(timeStamp, 0).UTC()
}
