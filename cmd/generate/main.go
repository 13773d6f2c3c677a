// Command generate synthesizes courses for a list of topics and prints them
// as JSON, optionally enrolling them for a learner in the configured store.
//
//	generate -topic Python -topic "Quantum Physics" -enroll ada@example.com
//	generate < topics.txt
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lumina/internal/catalog"
	"lumina/internal/config"
	"lumina/internal/domain"
	"lumina/internal/generator"
	"lumina/internal/logger"
	"lumina/internal/service"
	"lumina/internal/storage"
	"lumina/internal/validation"
)

type topicList []string

func (t *topicList) String() string { return strings.Join(*t, ",") }

func (t *topicList) Set(v string) error {
	*t = append(*t, v)
	return nil
}

type result struct {
	Topic          string                `json:"topic"`
	Classification domain.Classification `json:"classification"`
	Course         *domain.Course        `json:"course"`
	Enrolled       *bool                 `json:"enrolled,omitempty"`
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var topics topicList
	flag.Var(&topics, "topic", "topic to generate a course for (repeatable); read from stdin when omitted")
	latency := flag.Duration("latency", cfg.Generator.CourseLatency, "simulated generation latency per course")
	concurrency := flag.Int("concurrency", 4, "number of courses generated at once")
	enroll := flag.String("enroll", "", "email of the learner to enroll the generated courses for")
	flag.Parse()

	if err := logger.InitializeWriter(cfg.Logger, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	l := logger.Get()

	if len(topics) == 0 {
		if topics, err = readTopics(os.Stdin); err != nil {
			l.Fatal("Failed to read topics", zap.Error(err))
		}
	}
	v := validation.NewValidator()
	for i, t := range topics {
		trimmed, errs := v.ValidateTopic(t)
		if len(errs) > 0 {
			l.Fatal("Invalid topic", zap.Int("index", i), zap.Error(errs))
		}
		topics[i] = trimmed
	}
	if len(topics) == 0 {
		l.Fatal("No topics given")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load()
	if err != nil {
		l.Fatal("Failed to load content catalog", zap.Error(err))
	}
	gen := generator.NewCourseGenerator(cat,
		generator.WithLatency(*latency),
		generator.WithLogger(l.Named("generator")),
	)

	var (
		courses domain.CourseRepository
		userID  string
	)
	if *enroll != "" {
		if errs := v.ValidateLogin(*enroll, *enroll); len(errs) > 0 {
			l.Fatal("Invalid enroll email", zap.Error(errs))
		}
		store, err := storage.Open(ctx, cfg)
		if err != nil {
			l.Fatal("Failed to open storage", zap.Error(err))
		}
		defer store.Close()
		courses = store.Courses
		userID = service.UserIDForEmail(*enroll)
		l.Info("Enrolling generated courses",
			zap.String("user_id", userID),
			zap.String("storage", cfg.Storage.Driver),
		)
	}

	results := make([]result, len(topics))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*concurrency, 1))
	for i, topic := range topics {
		g.Go(func() error {
			var course *domain.Course
			select {
			case course = <-gen.GenerateCourseAsync(topic):
			case <-gctx.Done():
				return gctx.Err()
			}
			results[i] = result{Topic: topic, Classification: gen.Classify(topic), Course: course}

			if courses != nil {
				inserted, err := courses.Enroll(gctx, userID, course)
				if err != nil {
					return fmt.Errorf("enroll %q: %w", topic, err)
				}
				results[i].Enrolled = &inserted
			}
			l.Debug("Course generated", zap.String("topic", topic), zap.String("course_id", course.ID))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		l.Fatal("Course generation failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		l.Fatal("Failed to write results", zap.Error(err))
	}
	l.Info("Generated courses", zap.Int("count", len(results)))
}

// readTopics reads one topic per line, skipping blank lines and # comments.
func readTopics(f *os.File) (topicList, error) {
	var topics topicList
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		topics = append(topics, line)
	}
	return topics, sc.Err()
}
