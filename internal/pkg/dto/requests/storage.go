package requests

type UploadFile struct {
	ObjectName  string
	ContentType string
	Data        []byte
}
