package kafka

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// Handler must return nil only when the message was processed and its
// offset may be committed.
type Handler func(ctx context.Context, m kafka.Message) error

type Consumer struct {
	r       *kafka.Reader
	workers int
}

func NewConsumer(brokers []string, group, topic string, workers int) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        group,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // manual commit
	})
	if workers <= 0 {
		workers = 1
	}
	return &Consumer{r: r, workers: workers}
}

func (c *Consumer) Start(ctx context.Context, h Handler) error {
	defer c.r.Close()

	jobs := make(chan kafka.Message, 1024)
	p := startWorkers(ctx, c.workers, jobs, h, func(ctx context.Context, m kafka.Message) error {
		return c.r.CommitMessages(ctx, m)
	})
	stop := func() {
		close(jobs)
		p.wait()
	}

	for {
		m, err := c.r.ReadMessage(ctx)
		if err != nil {
			stop()
			select {
			case <-ctx.Done():
				return nil
			default:
				return err
			}
		}
		select {
		case jobs <- m:
		case <-ctx.Done():
			stop()
			return nil
		}

		select {
		case e := <-p.errs:
			log.Printf("worker error: %v", e)
			time.Sleep(200 * time.Millisecond)
		default:
		}
	}
}

type workerPool struct {
	errs chan error
	wg   sync.WaitGroup
}

// startWorkers runs n workers over jobs until jobs is closed. Errors go to
// errs when there is room and are logged otherwise, so a worker never
// blocks on reporting.
func startWorkers(ctx context.Context, n int, jobs <-chan kafka.Message, h Handler,
	commit func(context.Context, kafka.Message) error) *workerPool {
	p := &workerPool{errs: make(chan error, n)}
	report := func(err error) {
		select {
		case p.errs <- err:
		default:
			log.Printf("worker error: %v", err)
		}
	}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for m := range jobs {
				if err := h(ctx, m); err != nil {
					report(err)
					continue
				}
				if err := commit(ctx, m); err != nil {
					report(err)
				}
			}
		}()
	}
	return p
}

func (p *workerPool) wait() { p.wg.Wait() }
