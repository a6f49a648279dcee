package http

import (
	"mime/multipart"
	"time"

	"cloud-srv/internal/file"
	"cloud-srv/internal/model"
	"cloud-srv/pkg/util"
)

// uploadReq - Request for Upload: filename query param plus the file part.
type uploadReq struct {
	Owner    string
	FileName string
	Part     *multipart.FileHeader
}

func (r uploadReq) toInput(reader multipart.File) file.UploadInput {
	contentType := r.Part.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return file.UploadInput{
		Owner:       r.Owner,
		FileName:    r.FileName,
		ContentType: contentType,
		Size:        r.Part.Size,
		Reader:      reader,
	}
}

// fileReq - Request for Download and Delete: filename query param only.
type fileReq struct {
	Owner    string
	FileName string
}

func downloadInput(r fileReq) file.DownloadInput {
	return file.DownloadInput{Owner: r.Owner, FileName: r.FileName}
}

func deleteInput(r fileReq) file.DeleteInput {
	return file.DeleteInput{Owner: r.Owner, FileName: r.FileName}
}

// renameReq - Request for Rename: filename query param plus the new name body.
type renameReq struct {
	Owner   string
	OldName string
	Body    renameBody
}

type renameBody struct {
	NewFilename string `json:"newFilename" binding:"required"`
}

func (r renameReq) toInput() file.RenameInput {
	return file.RenameInput{
		Owner:   r.Owner,
		OldName: r.OldName,
		NewName: r.Body.NewFilename,
	}
}

// listReq - Request for List: limit query param, must be >= 1.
type listReq struct {
	Owner string
	Limit int
}

func listInput(r listReq) file.ListInput {
	return file.ListInput{Owner: r.Owner, Limit: r.Limit}
}

// fileItemResp - One listing entry
type fileItemResp struct {
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	UploadDate  time.Time `json:"uploadDate"`
	ContentType string    `json:"contentType"`
}

func (h *handler) newListResp(files []model.File) []fileItemResp {
	return util.MapSlice(files, func(f model.File) fileItemResp {
		return fileItemResp{
			Filename:    f.FileName,
			Size:        f.Size,
			UploadDate:  f.UploadDate,
			ContentType: f.ContentType,
		}
	})
}
