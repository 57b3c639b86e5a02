package compression

// Outcome is the result of a single compression attempt. Exactly one of
// Data and Err is set; an outcome is produced once and consumed once.
type Outcome struct {
	Data []byte
	Err  error
}

// Success reports whether the attempt produced output bytes.
func (o Outcome) Success() bool {
	return o.Err == nil
}

// success wraps output bytes into an outcome.
func success(data []byte) Outcome {
	return Outcome{Data: data}
}

// failure wraps an error into an outcome.
func failure(err error) Outcome {
	return Outcome{Err: err}
}
