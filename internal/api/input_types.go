package api

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// logPayload uses pointers so an omitted mood can fall back to the neutral default.
type logPayload struct {
	Flow     int      `json:"flow"`
	Pain     int      `json:"pain"`
	Mood     *int     `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

type datedLogPayload struct {
	Date string `json:"date"`
	logPayload
}

type bulkLogPayload struct {
	Logs []datedLogPayload `json:"logs"`
}
