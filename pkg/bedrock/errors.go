package bedrock

import "errors"

var (
	errNoTokenSource = errors.New("online mode requires an Xbox Live token source")
	errNoUsername    = errors.New("offline mode requires a username")
	errNoToken       = errors.New("no cached token")
)
