package constvars

const (
	RegexDataURL = `^data:([a-zA-Z0-9.+/-]+)?(;[a-zA-Z0-9=-]+)*;base64,`
)
