package services

import (
	"context"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// OCRService pulls text lines out of uploaded menu photos so the diet
// prompt can reference actual menu items. Extraction is best-effort:
// callers treat failures as "no text extracted".
type OCRService struct {
	client *rekognition.Client
}

func NewOCRService() (*OCRService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &OCRService{client: rekognition.NewFromConfig(cfg)}, nil
}

// ExtractMenuText runs DetectText over an image and joins the detected
// lines. PDF menus are not supported; callers skip them.
func (o *OCRService) ExtractMenuText(image []byte) (string, error) {
	out, err := o.client.DetectText(context.TODO(), &rekognition.DetectTextInput{
		Image: &types.Image{Bytes: image},
	})
	if err != nil {
		return "", err
	}

	var lines []string
	for _, d := range out.TextDetections {
		if d.Type == types.TextTypesLine && d.DetectedText != nil {
			lines = append(lines, *d.DetectedText)
		}
	}
	return strings.Join(lines, "\n"), nil
}
