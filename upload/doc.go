// Package upload validates uploaded files by their actual content.
//
// The Validator sniffs the true MIME type from the file bytes using
// content detection, never trusting the client-supplied Content-Type,
// then checks it against an allow-list and enforces a maximum byte
// size. On success the file is returned unchanged with its read
// position restored; on failure an RFC 9457 problem names the
// offending constraint (415 for a disallowed type, 413 for oversize).
//
//	imgValidator := upload.New(upload.Config{
//	    MaxSizeBytes:     upload.MBToBytes(1),
//	    AllowedMIMETypes: []string{"image/jpeg", "image/png", "image/svg+xml", "image/webp"},
//	})
//
//	file, header, _ := r.FormFile("file")
//	mime, err := imgValidator.Validate(file, header.Size)
//
// Size helpers use decimal units (1 KB = 1000 bytes).
package upload
