package datasource

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/wxtools/satdl/internal/logger"
	"github.com/wxtools/satdl/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// defaultRegion is used when the locator gives no region hint. The NOAA
// open-data buckets live in us-east-1.
const defaultRegion = "us-east-1"

// s3API is the slice of the S3 client used by the datasource. It satisfies
// s3.ListObjectsV2APIClient, so the SDK paginator accepts it directly.
type s3API interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Datasource lists and fetches product files from a public S3 bucket using
// anonymous credentials.
type S3Datasource struct {
	bucket   string
	basePath string
	client   s3API
	cache    *Cache
	group    singleflight.Group
}

// NewS3 creates an S3 datasource rooted at baseURL (an s3:// URL). The
// bucket is probed with HeadBucket before the datasource is returned, so an
// unreachable or inaccessible bucket fails construction.
func NewS3(ctx context.Context, baseURL, region string, opts Options) (*S3Datasource, error) {
	parts, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL '%s'", baseURL)
	}
	if region == "" {
		region = defaultRegion
	}

	client := s3.New(s3.Options{
		Region:      region,
		Credentials: aws.AnonymousCredentials{},
	})

	ds := &S3Datasource{
		bucket:   parts.Host,
		basePath: strings.TrimPrefix(parts.Path, "/"),
		client:   client,
		cache:    NewCache(opts.CacheTTL, opts.CacheMaxEntries),
	}
	if _, err := ds.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(ds.bucket)}); err != nil {
		return nil, errors.Wrapf(errors.ErrUnreachable,
			"bucket '%s' does not exist or you have no access: %v", ds.bucket, err)
	}
	return ds, nil
}

// newS3WithClient is the seam used by tests to substitute the S3 API.
func newS3WithClient(client s3API, bucket, basePath string, opts Options) *S3Datasource {
	return &S3Datasource{
		bucket:   bucket,
		basePath: basePath,
		client:   client,
		cache:    NewCache(opts.CacheTTL, opts.CacheMaxEntries),
	}
}

// ListFiles lists the objects under dirPath. Keys are paginated with
// ListObjectsV2; zero-size placeholder objects are filtered out, and names
// are returned with the dirPath prefix so they resolve against the base URL.
func (ds *S3Datasource) ListFiles(ctx context.Context, dirPath string) ([]string, error) {
	if files, ok := ds.cache.Get(dirPath); ok {
		logger.Debug("listing served from cache", logger.Fields{"dir": dirPath})
		return files, nil
	}

	result, err, _ := ds.group.Do(dirPath, func() (interface{}, error) {
		return ds.listRemote(ctx, dirPath)
	})
	if err != nil {
		return nil, err
	}
	return result.([]string), nil
}

func (ds *S3Datasource) listRemote(ctx context.Context, dirPath string) ([]string, error) {
	prefix := joinURL(ds.basePath, dirPath)

	paginator := s3.NewListObjectsV2Paginator(ds.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(ds.bucket),
		Prefix: aws.String(prefix),
	})

	var (
		files    []string
		keysSeen int
	)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrListingFailed, "'%s': %v", dirPath, err)
		}
		keysSeen += len(page.Contents)
		for _, obj := range page.Contents {
			if aws.ToInt64(obj.Size) == 0 {
				continue
			}
			key := aws.ToString(obj.Key)
			files = append(files, dirPath+key[len(prefix):])
		}
	}

	// A prefix with no keys at all means the directory does not exist; that
	// result is not cached so a later appearance is noticed immediately. A
	// directory holding only zero-size placeholders is real and its empty
	// listing is cached like any other.
	if keysSeen == 0 {
		return []string{}, nil
	}
	if files == nil {
		files = []string{}
	}

	logger.Debug("listed remote directory", logger.Fields{"dir": dirPath, "files": len(files)})
	ds.cache.Put(dirPath, files)
	return files, nil
}

// DownloadFile fetches the object at filePath into memory.
func (ds *S3Datasource) DownloadFile(ctx context.Context, filePath string) ([]byte, error) {
	out, err := ds.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ds.bucket),
		Key:    aws.String(joinURL(ds.basePath, filePath)),
	})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrRetrievalFailed, "'%s': %v", filePath, err)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrRetrievalFailed, "'%s': %v", filePath, err)
	}
	return data, nil
}

// ClearCache drops the cached listing for dirPath, or every listing when
// dirPath is empty.
func (ds *S3Datasource) ClearCache(dirPath string) error {
	if dirPath == "" {
		ds.cache.Clear()
		return nil
	}
	return ds.cache.Invalidate(dirPath)
}
