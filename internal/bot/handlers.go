package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/archignome/tgboy/internal/events"
	"github.com/archignome/tgboy/internal/orders"
	"github.com/archignome/tgboy/internal/present"
	"github.com/archignome/tgboy/internal/redisx"
	"github.com/archignome/tgboy/internal/storage"
)

// Secondary action ids used by keyword routing buttons.
const (
	actionShowFAQ      = "show_faq"
	actionShowPayment  = "show_payment"
	actionShowDownload = "show_download"
	actionShowSupport  = "show_support"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	if kind := mediaKind(msg); kind != "" {
		b.forwardToOperator(msg, kind)
		b.reply(msg.Chat.ID, fmt.Sprintf("Thank you for your %s. Our team will review it shortly.", kind))
		return
	}
	if msg.Text != "" {
		b.handleText(msg)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendCatalog(ctx, msg.Chat.ID, welcomeText)
	case "plans":
		b.sendCatalog(ctx, msg.Chat.ID, choosePlanText)
	case "orders":
		b.sendUserOrders(ctx, msg)
	case "help":
		b.reply(msg.Chat.ID, helpText)
	case "faq":
		b.reply(msg.Chat.ID, faqText)
	case "payment":
		b.reply(msg.Chat.ID, paymentText)
	case "support":
		b.reply(msg.Chat.ID, supportText)
	case "download":
		b.reply(msg.Chat.ID, downloadText)
	case "setstatus":
		b.handleSetStatus(ctx, msg)
	case "paid":
		b.handleSetPaid(ctx, msg)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Use /help to see all available commands.")
	}
}

// sendCatalog renders the plan keyboard. An empty catalog is a normal
// outcome and still yields a keyboard (single no_plans row).
func (b *Bot) sendCatalog(ctx context.Context, chatID int64, text string) {
	plans, err := b.Catalog.List(ctx)
	if err != nil {
		b.log.Error("list plans", "err", err)
		b.reply(chatID, apologyText)
		return
	}
	b.replyWithKeyboard(chatID, text, toKeyboard(present.Catalog(plans)))
}

func (b *Bot) sendUserOrders(ctx context.Context, msg *tgbotapi.Message) {
	userID := strconv.FormatInt(msg.From.ID, 10)
	list, err := b.Orders.ListForUser(ctx, userID)
	if err != nil {
		b.log.Error("list orders", "user", userID, "err", err)
		b.reply(msg.Chat.ID, apologyText)
		return
	}
	b.reply(msg.Chat.ID, present.OrderList(list))
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	b.ackCallback(cq.ID)
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID

	verb, arg := present.ParseAction(cq.Data)
	switch verb {
	case "view":
		b.showPlanDetail(ctx, chatID, cq.Message.MessageID, arg)
	case "buy":
		b.handleBuy(ctx, cq, arg)
	case present.ActionShowPlans:
		plans, err := b.Catalog.List(ctx)
		if err != nil {
			b.log.Error("list plans", "err", err)
			b.reply(chatID, apologyText)
			return
		}
		b.editWithKeyboard(chatID, cq.Message.MessageID, choosePlanText, toKeyboard(present.Catalog(plans)))
	case present.ActionNoPlans:
		b.reply(chatID, "No VPN plans are currently available. Please try again later.")
	case actionShowFAQ:
		b.reply(chatID, faqText)
	case actionShowPayment:
		b.reply(chatID, paymentText)
	case actionShowDownload:
		b.reply(chatID, downloadText)
	case actionShowSupport:
		b.reply(chatID, supportText)
	}
}

func (b *Bot) showPlanDetail(ctx context.Context, chatID int64, messageID int, planID string) {
	plan, err := b.Catalog.Get(ctx, planID)
	switch {
	case storage.IsNotFound(err):
		text, kb := present.PlanNotFound()
		b.editWithKeyboard(chatID, messageID, text, toKeyboard(kb))
	case err != nil:
		b.log.Error("get plan", "plan", planID, "err", err)
		b.reply(chatID, apologyText)
	default:
		b.editWithKeyboard(chatID, messageID, present.PlanDetail(plan), toKeyboard(present.PlanDetailKeyboard(plan)))
	}
}

// handleBuy records the order, publishes the lifecycle event and answers
// with payment instructions. A short redis guard swallows double-taps on
// the buy button; redis being down never blocks a purchase.
func (b *Bot) handleBuy(ctx context.Context, cq *tgbotapi.CallbackQuery, planID string) {
	chatID := cq.Message.Chat.ID
	userID := strconv.FormatInt(cq.From.ID, 10)

	order, dup, err := b.placeOrder(ctx, userID, displayName(cq.From), planID)
	switch {
	case dup:
		return
	case storage.IsNotFound(err):
		b.reply(chatID, "VPN plan not found.")
		return
	case err != nil:
		b.log.Error("create order", "user", userID, "plan", planID, "err", err)
		b.reply(chatID, apologyText)
		return
	}

	b.publishOrderCreated(order)
	b.log.Info("order created", "order", order.ID, "user", userID, "plan", planID)
	b.reply(chatID, present.OrderConfirmation(order))
}

// placeOrder snapshots the plan into a new order behind the double-tap
// guard. dup reports a swallowed repeat tap. The guard is armed only once
// creation succeeded, so a failed attempt can be retried right away.
func (b *Bot) placeOrder(ctx context.Context, userID, name, planID string) (orders.Order, bool, error) {
	tapKey := fmt.Sprintf(redisx.KeyBuyTap, userID, planID)
	if b.Redis != nil {
		if exists, err := redisx.Exists(ctx, b.Redis, tapKey); err == nil && exists {
			return orders.Order{}, true, nil
		}
	}

	plan, err := b.Catalog.Get(ctx, planID)
	if err != nil {
		return orders.Order{}, false, err
	}

	order, err := b.Orders.Create(ctx, userID, name, plan)
	if err != nil {
		return orders.Order{}, false, err
	}

	if b.Redis != nil {
		_ = b.Redis.Set(ctx, tapKey, "1", redisx.TTLBuyTap).Err()
	}
	return order, false, nil
}

// handleSetStatus is operator-only: /setstatus <orderID> <status...>
func (b *Bot) handleSetStatus(ctx context.Context, msg *tgbotapi.Message) {
	if !b.fromOperator(msg) {
		return
	}
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 2 {
		b.reply(msg.Chat.ID, "Usage: /setstatus <orderID> <status>")
		return
	}
	order, err := b.Orders.UpdateStatus(ctx, args[0], strings.Join(args[1:], " "))
	b.finishStatusUpdate(msg.Chat.ID, order, err)
}

// handleSetPaid is operator-only: /paid <orderID> <paymentStatus>
func (b *Bot) handleSetPaid(ctx context.Context, msg *tgbotapi.Message) {
	if !b.fromOperator(msg) {
		return
	}
	args := strings.Fields(msg.CommandArguments())
	if len(args) != 2 {
		b.reply(msg.Chat.ID, "Usage: /paid <orderID> <paymentStatus>")
		return
	}
	order, err := b.Orders.UpdatePaymentStatus(ctx, args[0], args[1])
	b.finishStatusUpdate(msg.Chat.ID, order, err)
}

func (b *Bot) finishStatusUpdate(chatID int64, order orders.Order, err error) {
	switch {
	case storage.IsNotFound(err):
		b.reply(chatID, "Order not found.")
	case storage.IsValidation(err):
		b.reply(chatID, err.Error())
	case err != nil:
		b.log.Error("update status", "err", err)
		b.reply(chatID, apologyText)
	default:
		b.publishStatusChanged(order)
		b.reply(chatID, present.OrderSummary(order))
	}
}

func (b *Bot) fromOperator(msg *tgbotapi.Message) bool {
	return b.OperatorChatID != 0 && msg.Chat.ID == b.OperatorChatID
}

// handleText forwards unsolicited text to the operator and routes common
// keywords to the matching info screens.
func (b *Bot) handleText(msg *tgbotapi.Message) {
	b.forwardToOperator(msg, "message")

	lower := strings.ToLower(msg.Text)
	switch {
	case strings.Contains(lower, "faq") || strings.Contains(lower, "question"):
		b.replyWithButton(msg.Chat.ID, "Here are our frequently asked questions:", "View FAQ", actionShowFAQ)
	case strings.Contains(lower, "payment") || strings.Contains(lower, "pay"):
		b.replyWithButton(msg.Chat.ID, "Here is our payment information:", "Payment Info", actionShowPayment)
	case strings.Contains(lower, "download") || strings.Contains(lower, "client") || strings.Contains(lower, "app"):
		b.replyWithButton(msg.Chat.ID, "Here are our VPN client download links:", "Download Links", actionShowDownload)
	case strings.Contains(lower, "support") || strings.Contains(lower, "help"):
		b.replyWithButton(msg.Chat.ID, "Here's how to contact our support team:", "Contact Support", actionShowSupport)
	case strings.Contains(lower, "plan") || strings.Contains(lower, "price") || strings.Contains(lower, "config"):
		b.replyWithButton(msg.Chat.ID, "Here are our available VPN plans:", "View Plans", present.ActionShowPlans)
	default:
		b.reply(msg.Chat.ID, supportAckText)
	}
}

func (b *Bot) replyWithButton(chatID int64, text, label, action string) {
	b.replyWithKeyboard(chatID, text, toKeyboard([][]present.Button{{{Label: label, Action: action}}}))
}

// forwardToOperator sends a formatted user-info header and then forwards
// the original message so its media metadata survives.
func (b *Bot) forwardToOperator(msg *tgbotapi.Message, kind string) {
	if b.OperatorChatID == 0 {
		b.log.Warn("operator chat id not configured, dropping forward", "kind", kind)
		return
	}

	caption := msg.Caption
	if kind == "message" {
		caption = fmt.Sprintf("Message: %q", msg.Text)
	}
	header := present.OperatorForward(
		kind,
		strconv.FormatInt(msg.From.ID, 10),
		strings.TrimSpace(msg.From.FirstName+" "+msg.From.LastName),
		msg.From.UserName,
		caption,
		time.Unix(int64(msg.Date), 0),
	)
	if err := b.Send(b.OperatorChatID, header); err != nil {
		b.log.Error("forward header failed", "err", err)
		return
	}
	if kind != "message" {
		fwd := tgbotapi.NewForward(b.OperatorChatID, msg.Chat.ID, msg.MessageID)
		if _, err := b.API.Send(fwd); err != nil {
			b.log.Error("forward failed", "kind", kind, "err", err)
		}
	}
}

func (b *Bot) publishOrderCreated(o orders.Order) {
	if b.ProducerCreated == nil {
		return
	}
	b.ProducerCreated.PublishEnvelope(events.NewEnvelope(events.EventOrderCreated, b.ServiceName, o.ID,
		events.OrderCreatedPayload{
			OrderID:    o.ID,
			UserID:     o.UserID,
			Username:   o.Username,
			ConfigID:   o.ConfigID,
			ConfigName: o.ConfigName,
			PriceCents: o.PriceCents,
			Status:     o.Status.Wire(),
		}))
}

func (b *Bot) publishStatusChanged(o orders.Order) {
	if b.ProducerStatus == nil {
		return
	}
	b.ProducerStatus.PublishEnvelope(events.NewEnvelope(events.EventOrderStatusChanged, b.ServiceName, o.ID,
		events.OrderStatusChangedPayload{
			OrderID:  o.ID,
			UserID:   o.UserID,
			Username: o.Username,
			Status:   o.Status.Wire(),
		}))
}

func mediaKind(msg *tgbotapi.Message) string {
	switch {
	case len(msg.Photo) > 0:
		return "photo"
	case msg.Document != nil:
		return "document"
	case msg.Video != nil:
		return "video"
	case msg.Audio != nil:
		return "audio"
	case msg.Voice != nil:
		return "voice message"
	case msg.Sticker != nil:
		return "sticker"
	case msg.Location != nil:
		return "location"
	case msg.Contact != nil:
		return "contact"
	}
	return ""
}

func displayName(u *tgbotapi.User) string {
	if u == nil {
		return "Unknown"
	}
	if u.UserName != "" {
		return u.UserName
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return "Unknown"
}
