package codegen

// Output file templates. Plain parameterized string templates with explicit
// named placeholders; no generation logic lives next to filesystem writes.

const popupHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
{{- if .IncludeStylesheet}}
  <link rel="stylesheet" href="styles.css">
{{- end}}
</head>
<body>
  <div class="popup-container">
    <h2 class="popup-title">{{.Title}}</h2>
    <div id="output" class="output-area"></div>
    <button id="actionBtn" class="btn-primary">{{.ButtonLabel}}</button>
    <div id="status" class="status-message"></div>
  </div>
  <script src="popup.js"></script>
</body>
</html>
`

const popupScriptTemplate = `// Generated popup script
document.addEventListener('DOMContentLoaded', () => {
  const actionBtn = document.getElementById('actionBtn');
  const output = document.getElementById('output');
  const status = document.getElementById('status');

{{- if .ShowDate}}

  function updateDateTime() {
    const now = new Date();
    const options = {
      weekday: 'long',
      year: 'numeric',
      month: 'long',
      day: 'numeric',
      hour: '2-digit',
      minute: '2-digit'
    };
    output.textContent = now.toLocaleDateString('en-US', options);
  }

  updateDateTime();
  actionBtn.addEventListener('click', updateDateTime);
{{- else if .MessageAction}}

  actionBtn.addEventListener('click', async () => {
    try {
      const [tab] = await chrome.tabs.query({active: true, currentWindow: true});
      const response = await chrome.tabs.sendMessage(tab.id, {action: '{{.MessageAction}}'});
      if (response && response.count !== undefined) {
        output.textContent = 'Matched ' + response.count + ' item(s)';
      }
      status.textContent = 'Done';
      status.className = 'status-message success';
    } catch (error) {
      status.textContent = 'Error: ' + error.message;
      status.className = 'status-message error';
    }
  });
{{- else}}

  actionBtn.addEventListener('click', () => {
    status.textContent = 'Action completed';
    status.className = 'status-message success';
  });
{{- end}}
});
`

const contentScriptTemplate = `// Generated content script
(function() {
  'use strict';

{{- if .HighlightPattern}}

  const TARGET_REGEX = {{.HighlightPattern}};

  function highlightMatches() {
    const walker = document.createTreeWalker(document.body, NodeFilter.SHOW_TEXT, null, false);
    const textNodes = [];
    let node;
    while ((node = walker.nextNode())) {
      if (node.nodeValue.match(TARGET_REGEX)) {
        textNodes.push(node);
      }
    }

    let count = 0;
    textNodes.forEach((textNode) => {
      const span = document.createElement('span');
      span.innerHTML = textNode.nodeValue.replace(TARGET_REGEX, (match) => {
        count++;
        return '<mark class="{{.HighlightClass}}">' + match + '</mark>';
      });
      textNode.parentNode.replaceChild(span, textNode);
    });
    return count;
  }

  highlightMatches();
{{- else}}

  function executeAction() {
    return { success: true };
  }
{{- end}}

  chrome.runtime.onMessage.addListener((request, sender, sendResponse) => {
{{- if .HighlightPattern}}
    if (request.action === '{{.MessageAction}}') {
      sendResponse({success: true, count: highlightMatches()});
    }
{{- else}}
    if (request.action === '{{.MessageAction}}') {
      sendResponse(executeAction());
    }
{{- end}}
    return true;
  });
})();
`

const backgroundScriptTemplate = `// Generated background service worker
chrome.runtime.onInstalled.addListener((details) => {
  console.log('Extension installed:', details.reason);
});

chrome.runtime.onStartup.addListener(() => {
  console.log('Browser started with extension active');
});

{{- if .BlockedSites}}

const BLOCKED_SITES = [{{range $i, $site := .BlockedSites}}{{if $i}}, {{end}}'{{$site}}'{{end}}];

async function setupBlockingRules() {
  const rules = BLOCKED_SITES.map((site, index) => ({
    id: index + 1,
    priority: 1,
    action: { type: 'block' },
    condition: {
      urlFilter: '||' + site,
      resourceTypes: ['main_frame', 'sub_frame']
    }
  }));

  const oldRules = await chrome.declarativeNetRequest.getDynamicRules();
  await chrome.declarativeNetRequest.updateDynamicRules({
    removeRuleIds: oldRules.map((rule) => rule.id),
    addRules: rules
  });
}

chrome.runtime.onInstalled.addListener(setupBlockingRules);
chrome.runtime.onStartup.addListener(setupBlockingRules);
{{- end}}

{{- if .UseAlarms}}

chrome.alarms.create('periodicTask', { periodInMinutes: 1 });

chrome.alarms.onAlarm.addListener((alarm) => {
  if (alarm.name === 'periodicTask') {
    console.log('Periodic task executed at', new Date().toISOString());
  }
});
{{- end}}
`

const stylesheetTemplate = `/* Generated stylesheet */
:root {
  --accent: {{.Accent}};
}

body {
  font-family: 'Segoe UI', system-ui, sans-serif;
  font-size: 14px;
  margin: 0;
}

.popup-container {
  min-width: 280px;
  padding: 16px;
}

.popup-title {
  margin: 0 0 12px;
  font-size: 18px;
  color: var(--accent);
}

.output-area {
  min-height: 48px;
  padding: 10px;
  margin-bottom: 12px;
  border: 1px solid #e0e0e0;
  border-radius: 6px;
}

.btn-primary {
  width: 100%;
  padding: 10px 16px;
  border: none;
  border-radius: 6px;
  background: var(--accent);
  color: #ffffff;
  font-size: 14px;
  cursor: pointer;
}

.btn-primary:hover {
  filter: brightness(0.92);
}

.status-message {
  margin-top: 10px;
  font-size: 12px;
  text-align: center;
}

.status-message.success {
  color: #34a853;
}

.status-message.error {
  color: #d93025;
}

mark.{{.HighlightClass}} {
  padding: 1px 4px;
  border-radius: 3px;
  background: var(--accent);
  color: #ffffff;
}
`
