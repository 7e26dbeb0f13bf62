package ingest

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveLister lists and downloads the CSVs of one Google Drive folder.
type DriveLister struct {
	service  *drive.Service
	folderID string
}

func NewDriveLister(ctx context.Context, credentialsFile, folderID string) (*DriveLister, error) {
	service, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("could not build drive service: %v", err)
	}

	return &DriveLister{
		service:  service,
		folderID: folderID,
	}, nil
}

func (l *DriveLister) List() ([]File, error) {
	q := fmt.Sprintf(
		"'%s' in parents and trashed = false and (mimeType='text/csv' or name contains '.csv')",
		l.folderID,
	)

	var files []File
	pageToken := ""
	for {
		call := l.service.Files.List().
			Q(q).
			PageSize(1000).
			Fields("nextPageToken, files(id,name,mimeType,modifiedTime,md5Checksum,size)")
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve files: %v", err)
		}

		for _, f := range r.Files {
			files = append(files, File{
				ID:           f.Id,
				Name:         f.Name,
				MD5:          f.Md5Checksum,
				ModifiedTime: f.ModifiedTime,
				Size:         strconv.FormatInt(f.Size, 10),
			})
		}

		pageToken = r.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return files, nil
}

func (l *DriveLister) Download(id string) ([]byte, error) {
	resp, err := l.service.Files.Get(id).Download()
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}
