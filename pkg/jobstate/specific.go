package jobstate

// SpecificData is the variant payload keyed by job type. The set of variants
// is closed: only SensorData and ScheduleData implement it.
type SpecificData interface {
	jobType() JobType
}

// SensorData is the payload for sensor jobs. LastRunKey is nil until the
// sensor has requested a run with a key.
type SensorData struct {
	LastRunKey *string
}

// ScheduleData is the payload for schedule jobs.
type ScheduleData struct {
	CronSchedule string
}

func (SensorData) jobType() JobType   { return JobTypeSensor }
func (ScheduleData) jobType() JobType { return JobTypeSchedule }

// VariantType reports which job type a payload belongs to, or "" for nil.
func VariantType(d SpecificData) JobType {
	return MatchSpecificData(d,
		func(SensorData) JobType { return JobTypeSensor },
		func(ScheduleData) JobType { return JobTypeSchedule },
		func() JobType { return "" },
	)
}

// MatchSpecificData dispatches on the variant of d. Every variant has its own
// positional handler, so introducing a new variant breaks each call site until
// it handles the new case. onNone is used when d is nil.
func MatchSpecificData[T any](
	d SpecificData,
	onSensor func(SensorData) T,
	onSchedule func(ScheduleData) T,
	onNone func() T,
) T {
	switch v := d.(type) {
	case SensorData:
		return onSensor(v)
	case *SensorData:
		if v != nil {
			return onSensor(*v)
		}
	case ScheduleData:
		return onSchedule(v)
	case *ScheduleData:
		if v != nil {
			return onSchedule(*v)
		}
	}
	return onNone()
}

// Describe returns a short human description of the variant payload:
// the cron expression for schedules, the cursor for sensors.
func Describe(d SpecificData) string {
	return MatchSpecificData(d,
		func(s SensorData) string {
			if s.LastRunKey == nil || *s.LastRunKey == "" {
				return "no run key"
			}
			return "last key " + *s.LastRunKey
		},
		func(s ScheduleData) string { return s.CronSchedule },
		func() string { return "" },
	)
}
