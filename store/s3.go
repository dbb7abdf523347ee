/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package store

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// ErrNotArchived indicates the requested tournament has never been
// published to the archive bucket.
var ErrNotArchived = errors.New("tournament is not in the archive")

const archivePrefix = "tournaments"

// Archive publishes tournament records to an Amazon S3 bucket and
// retrieves previously published ones. Objects are stored gzipped under
// tournaments/<name>.json.gz.
type Archive struct {
	// Config is the Amazon S3 configuration.
	Config aws.Config

	// Client is the s3 client the archive uses when interacting with S3.
	// By default this is initialized in Init() with the default Config, but
	// callers can optionally override this with their own s3 client if
	// desired.
	Client *s3.Client

	// bucketName is the name of the S3 bucket in Amazon S3. Example:
	// "mybucket".
	bucketName string

	// The context to specify when initiating s3 requests
	ctx context.Context
}

// NewArchive returns an Archive backed by the specified Amazon S3 bucket.
// Callers should take care to invoke Init() on the returned Archive before
// use.
func NewArchive(ctxIn context.Context, bucketNameIn string) *Archive {
	return &Archive{
		ctx:        ctxIn,
		bucketName: bucketNameIn,
	}
}

// The default configuration sources are:
// * Environment Variables (e.g. AWS_ACCESS_KEY_ID and AWS_SECRET_KEY)
// * Shared Configuration and Shared Credentials files.
// To use different credentials, modify the returned Archive object's
// Config and Client fields.
func (a *Archive) Init() error {
	var err error
	a.Config, err = config.LoadDefaultConfig(a.ctx)
	if err != nil {
		return fmt.Errorf("archive.init: failed to load AWS config: %w", err)
	}
	a.Client = s3.NewFromConfig(a.Config)

	// Permission check: verify bucket exists and is accessible
	if _, err = a.Client.HeadBucket(a.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(a.bucketName),
	}); err != nil {
		return fmt.Errorf("archive.init: head bucket failed for %s: %w",
			a.bucketName, err)
	}

	// Permission check: verify ability to list objects (read/list
	// permissions)
	if _, err = a.Client.ListObjectsV2(a.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(a.bucketName),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("archive.init: list objects failed for %s: %w",
			a.bucketName, err)
	}

	return nil
}

// Publish stores the record JSON for the named tournament, replacing any
// previously published copy.
func (a *Archive) Publish(name string, data []byte) error {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		return fmt.Errorf("archive.publish: failed to gzip %v: %w", name, err)
	}
	if err := gw.Close(); err != nil {
		return fmt.Errorf("archive.publish: failed to gzip %v: %w", name, err)
	}

	input := &s3.PutObjectInput{
		Bucket:          aws.String(a.bucketName),
		Key:             aws.String(objectKey(name)),
		Body:            &buf,
		ContentEncoding: aws.String("gzip"),
	}
	if _, err := a.Client.PutObject(a.ctx, input); err != nil {
		return fmt.Errorf("archive.publish: put failed for %v/%v: %w",
			a.bucketName, objectKey(name), err)
	}

	return nil
}

// Fetch retrieves the record JSON previously published under name. A
// tournament that has never been published yields ErrNotArchived.
func (a *Archive) Fetch(name string) ([]byte, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(a.bucketName),
		Key:    aws.String(objectKey(name)),
	}

	resp, err := a.Client.GetObject(a.ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil, ErrNotArchived
		}
		return nil, fmt.Errorf("archive.fetch: failed to get object %v/%v: %w",
			*input.Bucket, *input.Key, err)
	}
	defer resp.Body.Close()

	rdr, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("archive.fetch: failed to open compressed object %v/%v: %w",
			*input.Bucket, *input.Key, err)
	}
	defer rdr.Close()

	data, err := io.ReadAll(rdr)
	if err != nil {
		return nil, fmt.Errorf("archive.fetch: failed to read object %v/%v: %w",
			*input.Bucket, *input.Key, err)
	}

	return data, nil
}

// List returns the names of all published tournaments in sorted order.
func (a *Archive) List() ([]string, error) {
	var names []string

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(a.bucketName),
		Prefix: aws.String(archivePrefix + "/"),
	}
	for {
		resp, err := a.Client.ListObjectsV2(a.ctx, input)
		if err != nil {
			return nil, fmt.Errorf("archive.list: list objects failed for %s: %w",
				a.bucketName, err)
		}
		for _, obj := range resp.Contents {
			key := aws.ToString(obj.Key)
			key = strings.TrimPrefix(key, archivePrefix+"/")
			key = strings.TrimSuffix(key, ".json.gz")
			if key != "" {
				names = append(names, key)
			}
		}
		if resp.NextContinuationToken == nil {
			break
		}
		input.ContinuationToken = resp.NextContinuationToken
	}

	sort.Strings(names)

	return names, nil
}

// Remove deletes the published copy of the named tournament, if any.
func (a *Archive) Remove(name string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucketName),
		Key:    aws.String(objectKey(name)),
	}

	if _, err := a.Client.DeleteObject(a.ctx, input); err != nil {
		return fmt.Errorf("archive.remove: delete failed for %v/%v: %w",
			a.bucketName, objectKey(name), err)
	}

	return nil
}

func objectKey(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")

	return fmt.Sprintf("%v/%v.json.gz", archivePrefix, slug)
}
