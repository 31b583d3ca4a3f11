package status

// Data contains all the information to display in status
type Data struct {
	// Header
	SpecPath       string
	Title          string
	APIVersion     string
	OpenAPIVersion string
	Version        string

	// Configuration
	ConfigFiles []string
	PathPrefix  string

	Operations []Operation
}

// Operation summarizes one path/method pair
type Operation struct {
	Path    string
	Method  string
	ID      string
	Summary string

	// Parameters are in completion order
	Parameters []Parameter
	Responses  []Response
	Body       Body

	// Error is set when a reference on this operation does not resolve.
	// Completion of the operation would pass the command through unchanged.
	Error string
}

// Parameter is one entry of the completion table
type Parameter struct {
	Name        string
	In          string
	Example     string
	HasExample  bool
	Completable bool
}

// Response is a declared response code
type Response struct {
	Code        string
	Description string
}

// Body describes the JSON body ding would insert
type Body struct {
	Declared bool
	JSON     bool
	// Example is the compact JSON that would become the body
	Example string
}
