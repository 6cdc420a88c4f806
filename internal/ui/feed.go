package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/modelsweep/modelsweep/internal/engine"
	"github.com/modelsweep/modelsweep/internal/i18n"
	"github.com/modelsweep/modelsweep/internal/logging"
	"github.com/modelsweep/modelsweep/internal/panel"
)

func waitForFeedEvent(f *engine.Feed) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-f.Events()
		if !ok {
			return feedDoneMsg{}
		}
		return feedEventMsg{event: evt}
	}
}

type feedEventMsg struct {
	event engine.Event
}

type feedDoneMsg struct{}

// bridgeResultMsg reports the outcome of one outbound engine message.
type bridgeResultMsg struct {
	effect panel.Effect
	err    error
}

type scannerCancelMsg struct {
	err error
}

type noticeTickMsg struct {
	at time.Time
}

const noticeTickInterval = 500 * time.Millisecond

func (m *Model) handleFeedEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(feedEventMsg)
	if !ok {
		return nil
	}
	m.router.Route(eventMsg.event)
	if m.feed != nil {
		return waitForFeedEvent(m.feed)
	}
	return nil
}

func (m *Model) handleFeedDoneMsg(tea.Msg) tea.Cmd {
	m.feed = nil
	return nil
}

// drainEffects turns queued controller effects into bridge commands. The
// transport runs off the update loop; results come back as messages.
func (m *Model) drainEffects() []tea.Cmd {
	effects := m.controller.TakeEffects()
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, effect := range effects {
		cmds = append(cmds, m.sendEffect(effect))
	}
	return cmds
}

func (m *Model) sendEffect(effect panel.Effect) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		switch effect.Kind {
		case panel.EffectStartAck:
			err = m.bridge.StartAck(ctx)
		case panel.EffectDecision:
			err = m.bridge.Decision(ctx, effect.SessionID, effect.Indices)
		case panel.EffectCancel:
			err = m.bridge.Cancel(ctx)
		}
		return bridgeResultMsg{effect: effect, err: err}
	}
}

func (m *Model) handleBridgeResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(bridgeResultMsg)
	if !ok {
		return nil
	}
	m.controller.ResolveSend(result.effect.Node, result.effect.Kind, result.err)
	if result.err != nil {
		logging.Error(result.err)
		m.notices.Error(result.err.Error())
		return nil
	}
	if !m.verbose {
		return nil
	}
	switch result.effect.Kind {
	case panel.EffectDecision:
		m.notices.Success(i18n.Tf("notify.decision_sent", len(result.effect.Indices)))
	case panel.EffectCancel:
		m.notices.Success(i18n.T("notify.cancel_sent"))
	}
	return nil
}

// cancelScan aborts the engine's analysis step. Only meaningful while some
// node is mid-scan; the binding is inert otherwise.
func (m *Model) cancelScan() tea.Cmd {
	if !m.registry.AnyScanning() {
		return nil
	}
	m.notices.Info(i18n.T("notify.scan_cancelled"))
	return func() tea.Msg {
		return scannerCancelMsg{err: m.bridge.ScannerCancel(context.Background())}
	}
}

func (m *Model) handleScannerCancelMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(scannerCancelMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		logging.Error(result.err)
		m.notices.Error(result.err.Error())
	}
	return nil
}

func (m *Model) syncSpinner() tea.Cmd {
	scanning := m.registry.AnyScanning()
	if scanning && !m.spinning {
		m.spinning = true
		return m.spin.Tick
	}
	if !scanning {
		m.spinning = false
	}
	return nil
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if !m.spinning {
		return nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return cmd
}

func (m *Model) armNoticeTimer() tea.Cmd {
	if m.noticeTimer || len(m.notices.Active()) == 0 {
		return nil
	}
	m.noticeTimer = true
	return tea.Tick(noticeTickInterval, func(t time.Time) tea.Msg {
		return noticeTickMsg{at: t}
	})
}

func (m *Model) handleNoticeTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(noticeTickMsg)
	if !ok {
		return nil
	}
	m.noticeTimer = false
	m.notices.Prune(tick.at)
	return nil
}
