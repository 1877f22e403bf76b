package mock

//go:generate minimock -g -i github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/service.Service -o ./ -s "_mock.gen.go"
//go:generate minimock -g -i github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/service.ImageFetcher -o ./ -s "_mock.gen.go"
//go:generate minimock -g -i github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/recognizer.Recognizer -o ./ -s "_mock.gen.go"
