// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package lookup

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/output"
	"github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/statuspage"
)

// Options controls a Run.
type Options struct {
	// PerPage is the page size requested from paged endpoints.
	PerPage int

	// CSVPath and JSONPath, when set, receive the results. Both may be set.
	CSVPath  string
	JSONPath string

	// Stdout receives the table when no file output is requested.
	// Defaults to os.Stdout.
	Stdout io.Writer

	Logger *logrus.Entry
}

// Result summarises a completed Run.
type Result struct {
	Component        statuspage.Component
	SubscribersTotal int
	Rows             []output.Row
}

// Run resolves the component, fetches and filters subscribers and writes
// the requested outputs. The first error aborts the run.
func Run(ctx context.Context, client statuspage.Client, q Query, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"component_name": q.Name,
		"component_id":   q.ID,
		"page":           client.PageID(),
	}).Info("resolving component")

	component, err := Resolve(ctx, client, q, opts.PerPage)
	if err != nil {
		return nil, err
	}
	log = log.WithFields(logrus.Fields{"component_id": component.ID, "component_name": component.Name})
	log.WithField("group_id", component.GroupID).Info("resolved component")

	subscribers, err := FetchSubscribers(ctx, client, opts.PerPage)
	if err != nil {
		return nil, err
	}
	log.WithField("subscribers_total", len(subscribers)).Info("fetched subscribers")

	matched := Filter(*component, client.PageID(), subscribers)
	rows := Rows(*component, matched)
	if len(rows) == 0 {
		log.Info("no subscribers found for the specified component")
	} else {
		log.WithField("subscribers_count", len(rows)).Info("matched subscribers")
	}

	if err := writeOutputs(rows, opts, log); err != nil {
		return nil, err
	}

	return &Result{
		Component:        *component,
		SubscribersTotal: len(subscribers),
		Rows:             rows,
	}, nil
}

func writeOutputs(rows []output.Row, opts Options, log *logrus.Entry) error {
	if opts.CSVPath == "" && opts.JSONPath == "" {
		return output.WriteAll(output.NewTableWriter(opts.Stdout), rows)
	}

	if opts.CSVPath != "" {
		w, err := output.NewCSVFile(opts.CSVPath)
		if err != nil {
			return err
		}
		if err := output.WriteAll(w, rows); err != nil {
			return err
		}
		log.WithField("path", opts.CSVPath).Info("subscribers saved to CSV file")
	}

	if opts.JSONPath != "" {
		w, err := output.NewJSONFile(opts.JSONPath)
		if err != nil {
			return err
		}
		if err := output.WriteAll(w, rows); err != nil {
			return err
		}
		log.WithField("path", opts.JSONPath).Info("subscribers saved to JSON file")
	}
	return nil
}
