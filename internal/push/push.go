// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package push mirrors a generated data directory into an S3 bucket so that
// benchmark hosts can pull the same blocks instead of generating them.
package push

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/staranto/cacheprime/internal/generator"
)

// API is the slice of the S3 client push needs.
type API interface {
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Target is where objects go.
type Target struct {
	Bucket string
	Prefix string
}

// Key returns the object key for a file name.
func (t Target) Key(name string) string {
	if t.Prefix == "" {
		return name
	}
	return path.Join(t.Prefix, name)
}

// Result counts what Dir did.
type Result struct {
	Uploaded int64
	Skipped  int64
	Bytes    int64
}

// Dir uploads every block named by dir's manifest, then the manifest itself.
// Objects that already exist with the expected size are left alone; the
// manifest is always uploaded.
func Dir(ctx context.Context, client API, dir string, target Target, out io.Writer) (Result, error) {
	var res Result

	if target.Bucket == "" {
		return res, errors.New("bucket is required")
	}
	if out == nil {
		out = io.Discard
	}

	m, err := generator.ReadManifest(dir)
	if err != nil {
		return res, err
	}
	log.Debugf("pushing %d blocks from %s to s3://%s/%s", m.Blocks, dir, target.Bucket, target.Prefix)

	for i := int64(0); i < m.Blocks; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		name := generator.BlockName(i)
		key := target.Key(name)

		present, err := exists(ctx, client, target.Bucket, key, m.BlockSize)
		if err != nil {
			return res, fmt.Errorf("failed to check s3://%s/%s: %w", target.Bucket, key, err)
		}
		if present {
			res.Skipped++
			fmt.Fprintf(out, "Skipping existing: s3://%s/%s\n", target.Bucket, key)
			continue
		}

		n, err := upload(ctx, client, target.Bucket, key, generator.BlockPath(dir, i))
		if err != nil {
			return res, err
		}
		res.Uploaded++
		res.Bytes += n
		fmt.Fprintf(out, "Uploaded: %s (%d/%d)\n", key, i+1, m.Blocks)
	}

	key := target.Key(generator.ManifestName)
	n, err := upload(ctx, client, target.Bucket, key, generator.ManifestPath(dir))
	if err != nil {
		return res, err
	}
	res.Bytes += n
	fmt.Fprintf(out, "Manifest uploaded to s3://%s/%s\n", target.Bucket, key)

	return res, nil
}

func exists(ctx context.Context, client API, bucket, key string, size int64) (bool, error) {
	out, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if got := awsv2.ToInt64(out.ContentLength); got != size {
		log.Warnf("s3://%s/%s has %d bytes, want %d; replacing", bucket, key, got, size)
		return false, nil
	}
	return true, nil
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == 404 //nolint:mnd
}

func upload(ctx context.Context, client API, bucket, key, file string) (int64, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", file, err)
	}

	if _, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        awsv2.String(bucket),
		Key:           awsv2.String(key),
		Body:          f,
		ContentLength: awsv2.Int64(info.Size()),
	}); err != nil {
		return 0, fmt.Errorf("failed to upload s3://%s/%s: %w", bucket, key, err)
	}
	return info.Size(), nil
}
