package summary

// Config holds settings for the rendered summary artifact.
type Config struct {
	// ObjectName is the object key of the summary image inside the storage bucket.
	ObjectName string `mapstructure:"object_name" default:"summary/cache_summary.png"`
	// QueueSize bounds the number of pending summary events.
	QueueSize int `mapstructure:"queue_size" default:"4"`
}
