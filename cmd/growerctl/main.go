// Command growerctl is a terminal client for the ConnectGrower API. It also
// carries a small load generator for the live chat.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"connectgrower/internal/client"
	"connectgrower/internal/models"
)

const usageText = `usage: growerctl [flags] <command> [args]

commands:
  feed                     list posts, newest first
  chat                     list chat messages, oldest first
  watch posts|messages     print live snapshots until interrupted
  post <title> [content]   create a post (-image attaches a photo)
  like <post-id>           toggle your like on a post
  comment <post-id> <text> append a comment
  send <text>              send a chat message (-reply replies to a message)
  photo <path>             send a photo or video to the chat
  stress                   open many live chat connections and send periodically
`

type options struct {
	host     string
	email    string
	password string
	token    string
	lang     string
	image    string
	reply    uint
	clients  int
	duration time.Duration
	interval time.Duration
}

func main() {
	var o options
	flag.StringVar(&o.host, "host", "http://localhost:8375", "API base URL")
	flag.StringVar(&o.email, "email", os.Getenv("GROWER_EMAIL"), "account email")
	flag.StringVar(&o.password, "password", os.Getenv("GROWER_PASSWORD"), "account password")
	flag.StringVar(&o.token, "token", os.Getenv("GROWER_TOKEN"), "session token instead of email and password")
	flag.StringVar(&o.lang, "lang", "", "display language (en, ko, ja, it); defaults to the account's")
	flag.StringVar(&o.image, "image", "", "photo to attach to a new post")
	var reply uint64
	flag.Uint64Var(&reply, "reply", 0, "message id to reply to")
	flag.IntVar(&o.clients, "clients", 20, "stress: concurrent connections")
	flag.DurationVar(&o.duration, "duration", 30*time.Second, "stress: test duration")
	flag.DurationVar(&o.interval, "interval", 5*time.Second, "stress: delay between messages per client")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usageText); flag.PrintDefaults() }
	flag.Parse()
	o.reply = uint(reply)

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o, flag.Arg(0), flag.Args()[1:]); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			log.Fatalf("❌ %s (HTTP %d)", apiErr.Message, apiErr.Status)
		}
		log.Fatalf("❌ %v", err)
	}
}

func run(ctx context.Context, o options, command string, args []string) error {
	api := client.New(o.host, client.WithToken(o.token))
	session := client.NewSession(api)
	if err := signIn(ctx, session, api, o); err != nil {
		return err
	}
	lang := displayLocale(o.lang, session.User())

	switch command {
	case "feed":
		return printFeed(ctx, api, lang)
	case "chat":
		return printChat(ctx, api, lang)
	case "watch":
		if len(args) != 1 {
			return errors.New("usage: watch posts|messages")
		}
		return watch(ctx, api, session, models.Collection(args[0]), lang)
	case "post":
		if len(args) < 1 {
			return errors.New("usage: post <title> [content]")
		}
		return createPost(ctx, api, args[0], strings.Join(args[1:], " "), o.image)
	case "like":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		return toggleLike(ctx, api, session, id)
	case "comment":
		id, err := parseID(args)
		if err != nil || len(args) < 2 {
			return errors.New("usage: comment <post-id> <text>")
		}
		return comment(ctx, api, session, id, strings.Join(args[1:], " "))
	case "send":
		if len(args) < 1 {
			return errors.New("usage: send <text>")
		}
		return send(ctx, api, session, strings.Join(args, " "), lang, o.reply)
	case "photo":
		if len(args) != 1 {
			return errors.New("usage: photo <path>")
		}
		return sendPhoto(ctx, api, session, args[0])
	case "stress":
		return stress(ctx, o)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func signIn(ctx context.Context, session *client.Session, api *client.Client, o options) error {
	if api.Token() != "" {
		user, err := api.Me(ctx)
		if err != nil {
			return fmt.Errorf("token rejected: %w", err)
		}
		session.Set(user)
		return nil
	}
	if o.email == "" || o.password == "" {
		return errors.New("sign in with -email and -password, or pass -token")
	}
	_, err := session.Login(ctx, o.email, o.password)
	return err
}

func displayLocale(flagValue string, user *models.User) models.Locale {
	if l, ok := models.ParseLocale(flagValue); ok {
		return l
	}
	if user != nil {
		if l, ok := models.ParseLocale(string(user.Locale)); ok {
			return l
		}
	}
	return models.LocaleEnglish
}

func parseID(args []string) (uint, error) {
	if len(args) < 1 {
		return 0, errors.New("missing id")
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return uint(id), nil
}

func printFeed(ctx context.Context, api *client.Client, lang models.Locale) error {
	posts, err := api.Posts(ctx)
	if err != nil {
		return err
	}
	for _, p := range posts {
		title, content := p.Title, p.Content
		if lang != models.LocaleEnglish {
			if tr, err := api.TranslatePost(ctx, p.ID, lang); err == nil {
				title, content = tr.Title.Text, tr.Content.Text
			}
		}
		fmt.Printf("#%d %s  (%s, ♥ %d, 💬 %d)\n", p.ID, title, p.AuthorName, len(p.Likes), len(p.Comments))
		if content != "" {
			fmt.Printf("    %s\n", content)
		}
	}
	return nil
}

func printChat(ctx context.Context, api *client.Client, lang models.Locale) error {
	messages, err := api.Messages(ctx)
	if err != nil {
		return err
	}
	for _, m := range messages {
		printMessage(m, lang)
	}
	return nil
}

func printMessage(m *models.ChatMessage, lang models.Locale) {
	body := m.TextFor(lang)
	if m.MediaURL != nil {
		body = fmt.Sprintf("[%s] %s", m.Type, *m.MediaURL)
	}
	if m.ReplyTo != nil {
		fmt.Printf("    ↪ %s: %s\n", m.ReplyTo.User, m.ReplyTo.Text)
	}
	fmt.Printf("#%d %s %s: %s\n", m.ID, m.CreatedAt.Local().Format("15:04"), m.SenderName, body)
}

func watch(ctx context.Context, api *client.Client, session *client.Session, collection models.Collection, lang models.Locale) error {
	var sub *client.Subscription
	var err error
	switch collection {
	case models.CollectionPosts:
		store := client.NewFeedStore(api, session)
		store.OnChange(func() {
			posts := store.Posts()
			log.Printf("📰 %d posts", len(posts))
			if len(posts) > 0 {
				fmt.Printf("   latest: #%d %s (%s)\n", posts[0].ID, posts[0].Title, posts[0].AuthorName)
			}
		})
		sub, err = store.Watch(ctx, api)
	case models.CollectionMessages:
		store := client.NewChatStore(api, session)
		store.OnChange(func() {
			msgs := store.Messages()
			log.Printf("💬 %d messages", len(msgs))
			if len(msgs) > 0 {
				printMessage(msgs[len(msgs)-1], lang)
			}
		})
		sub, err = store.Watch(ctx, api)
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}
	if err != nil {
		return err
	}
	defer func() { _ = sub.Close() }()

	select {
	case <-ctx.Done():
		return nil
	case <-sub.Done():
		return sub.Err()
	}
}

func createPost(ctx context.Context, api *client.Client, title, content, imagePath string) error {
	var image *client.File
	if imagePath != "" {
		f, err := readFile(imagePath)
		if err != nil {
			return err
		}
		image = f
	}
	post, err := api.CreatePost(ctx, title, content, image)
	if err != nil {
		return err
	}
	log.Printf("✅ post #%d created", post.ID)
	if post.ImageURL != "" {
		log.Printf("   image: %s", post.ImageURL)
	}
	return nil
}

func readFile(path string) (*client.File, error) {
	// #nosec G304: path comes from the command line of a dev tool
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &client.File{Name: filepath.Base(path), Content: content}, nil
}

func toggleLike(ctx context.Context, api *client.Client, session *client.Session, postID uint) error {
	posts, err := api.Posts(ctx)
	if err != nil {
		return err
	}
	store := client.NewFeedStore(api, session)
	store.Replace(posts)
	if err := store.ToggleLike(ctx, postID); err != nil {
		return err
	}
	for _, p := range store.Posts() {
		if p.ID == postID {
			state := "unliked"
			if p.LikedBy(session.UserID()) {
				state = "liked"
			}
			log.Printf("✅ %s post #%d (♥ %d)", state, postID, len(p.Likes))
		}
	}
	return nil
}

func comment(ctx context.Context, api *client.Client, session *client.Session, postID uint, text string) error {
	posts, err := api.Posts(ctx)
	if err != nil {
		return err
	}
	store := client.NewFeedStore(api, session)
	store.Replace(posts)
	if err := store.AppendComment(ctx, postID, text); err != nil {
		return err
	}
	log.Printf("✅ comment added to post #%d", postID)
	return nil
}

func send(ctx context.Context, api *client.Client, session *client.Session, text string, lang models.Locale, replyID uint) error {
	messages, err := api.Messages(ctx)
	if err != nil {
		return err
	}
	store := client.NewChatStore(api, session)
	store.Replace(messages)

	var replyTo *models.ChatMessage
	if replyID != 0 {
		for _, m := range messages {
			if m.ID == replyID {
				replyTo = m
			}
		}
		if replyTo == nil {
			return fmt.Errorf("message #%d not found", replyID)
		}
	}
	if err := store.SendMessage(ctx, text, lang, replyTo); err != nil {
		return err
	}
	msgs := store.Messages()
	printMessage(msgs[len(msgs)-1], lang)
	return nil
}

func sendPhoto(ctx context.Context, api *client.Client, session *client.Session, path string) error {
	f, err := readFile(path)
	if err != nil {
		return err
	}
	store := client.NewChatStore(api, session)
	if err := store.SendMedia(ctx, *f); err != nil {
		return err
	}
	for _, m := range store.Messages() {
		printMessage(m, models.LocaleEnglish)
	}
	return nil
}

// metrics tracks the stress test results
type metrics struct {
	connectionsAttempted atomic.Int64
	connectionsSuccess   atomic.Int64
	connectionsFailed    atomic.Int64
	messagesSent         atomic.Int64
	snapshotsReceived    atomic.Int64
	errors               atomic.Int64
}

func stress(ctx context.Context, o options) error {
	log.Printf("🚀 Starting chat stress test")
	log.Printf("Target: %s  Clients: %d  Duration: %v", o.host, o.clients, o.duration)

	if o.email == "" || o.password == "" {
		return errors.New("stress needs -email and -password")
	}
	api := client.New(o.host)
	if _, err := api.Login(ctx, o.email, o.password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	log.Printf("✅ Logged in successfully")

	ctx, cancel := context.WithTimeout(ctx, o.duration)
	defer cancel()

	var m metrics
	var wg sync.WaitGroup
	for i := 0; i < o.clients; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runClient(ctx, api, id, o.interval, &m)
		}(i)
		// Stagger connections to allow ticket issuance
		time.Sleep(50 * time.Millisecond)
	}

	<-ctx.Done()
	log.Println("Waiting for clients to disconnect...")
	wg.Wait()

	log.Println("📊 Test Results")
	log.Println("===============")
	log.Printf("Connections Attempted: %d", m.connectionsAttempted.Load())
	log.Printf("Connections Successful: %d", m.connectionsSuccess.Load())
	log.Printf("Connections Failed: %d", m.connectionsFailed.Load())
	log.Printf("Messages Sent: %d", m.messagesSent.Load())
	log.Printf("Snapshots Received: %d", m.snapshotsReceived.Load())
	log.Printf("Total Errors: %d", m.errors.Load())
	return nil
}

func runClient(ctx context.Context, api *client.Client, id int, interval time.Duration, m *metrics) {
	m.connectionsAttempted.Add(1)
	sub, err := client.Watch(ctx, api, models.CollectionMessages, func([]models.ChatMessage) {
		m.snapshotsReceived.Add(1)
	})
	if err != nil {
		m.connectionsFailed.Add(1)
		m.errors.Add(1)
		return
	}
	defer func() { _ = sub.Close() }()
	m.connectionsSuccess.Add(1)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Done():
			m.errors.Add(1)
			return
		case <-ticker.C:
			text := fmt.Sprintf("Stress test message from client %d", id)
			if _, err := api.SendMessage(context.WithoutCancel(ctx), text, "", nil); err != nil {
				m.errors.Add(1)
				continue
			}
			m.messagesSent.Add(1)
		}
	}
}
