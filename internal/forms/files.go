package forms

import "fmt"

const (
	MimePDF  = "application/pdf"
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeXLS  = "application/vnd.ms-excel"

	MB = 1 << 20
)

// SlotSpec describes one logical attachment position: whether it must be
// present, which declared MIME types are acceptable, and the byte ceiling.
type SlotSpec struct {
	Name       string
	Required   bool
	MaxBytes   int64
	MimeTypes  []string
	NamePrefix string
}

// FileError names the slot that failed the gate; it maps to a 400.
type FileError struct {
	Slot    string
	Message string
}

func (e *FileError) Error() string { return e.Message }

// CheckFiles enforces every slot spec before any upload happens. The gate
// is all-or-nothing: the first violation rejects the whole request so no
// partial upload is ever attempted for a doomed submission.
func CheckFiles(files map[string]*FileBlob, slots []SlotSpec) error {
	for _, slot := range slots {
		blob, ok := files[slot.Name]
		if !ok || blob == nil {
			if slot.Required {
				return &FileError{Slot: slot.Name, Message: fmt.Sprintf("File %q is required", slot.Name)}
			}
			continue
		}

		if !mimeAllowed(blob.MimeType, slot.MimeTypes) {
			return &FileError{
				Slot:    slot.Name,
				Message: fmt.Sprintf("File %q must be one of: %s", slot.Name, joinMimes(slot.MimeTypes)),
			}
		}

		if blob.Size > slot.MaxBytes {
			return &FileError{
				Slot:    slot.Name,
				Message: fmt.Sprintf("File %q too large. Maximum allowed size is %dMB", slot.Name, slot.MaxBytes/MB),
			}
		}
	}
	return nil
}

func mimeAllowed(mime string, allowed []string) bool {
	for _, a := range allowed {
		if mime == a {
			return true
		}
	}
	return false
}

func joinMimes(mimes []string) string {
	out := ""
	for i, m := range mimes {
		if i > 0 {
			out += ", "
		}
		out += m
	}
	return out
}
