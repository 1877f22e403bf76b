package service

import "errors"

var ErrMissingImageURL = errors.New("imageUrl is required")
var ErrImageFetch = errors.New("image download failed")
var ErrRemoteDetection = errors.New("label detection failed")
