package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/blockpad/pkg/render"
)

// ownerAt returns what the body shows at a screen position
func (m *EditorModel) ownerAt(y int) (lineOwner, bool) {
	row := y - headerHeight + m.body.YOffset
	if y < headerHeight || y >= headerHeight+m.body.Height || row < 0 || row >= len(m.owners) {
		return lineOwner{}, false
	}
	return m.owners[row], true
}

func (m *EditorModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.settings.UI.Mouse || !m.engine.Ready() || m.confirm.Active() {
		return nil
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	owner, ok := m.ownerAt(msg.Y)

	if m.engine.Menu().Open {
		inside := ok && owner.menu && msg.X >= owner.x0 && msg.X < owner.x1
		switch {
		case inside && owner.item >= 0:
			m.engine.SelectCommand(owner.item)
		case !inside:
			m.engine.DismissMenu()
		}
		return nil
	}

	if !ok {
		m.engine.Blur()
		return nil
	}
	if owner.add {
		if _, added := m.engine.AddBlock(); added {
			m.hover = m.engine.Len() - 1
		}
		return nil
	}
	if owner.blockID == "" {
		return nil
	}

	idx := m.indexOf(owner.blockID)
	if owner.first && msg.X < gutterWidth && idx == m.hover {
		if action, hit := actionAt(render.HoverActions, msg.X); hit {
			switch action {
			case render.ActionCopy:
				return m.copyBlock(owner.blockID)
			case render.ActionDelete:
				return m.requestDelete(owner.blockID)
			}
			// the drag handle only marks the block
			return nil
		}
	}

	m.hover = idx
	m.engine.BeginEdit(owner.blockID)
	return nil
}

func (m *EditorModel) indexOf(id string) int {
	for i, b := range m.engine.Blocks() {
		if b.ID == id {
			return i
		}
	}
	return -1
}
