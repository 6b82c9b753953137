package bot

const welcomeText = `👋 Welcome to VPN Service Bot!

Choose from our premium VPN configurations below:`

const choosePlanText = `Choose a VPN configuration:`

const helpText = `🔍 Available Commands:

Core Commands:
/start - Start the bot and see VPN configurations
/plans - View available VPN plans
/orders - View your orders

Information:
/faq - Frequently asked questions
/payment - Payment methods and information
/download - Download VPN client applications

Support:
/help - Show this help message
/support - Contact our support team

You can also send messages or images directly to this chat to reach our support team.`

const faqText = `❓ Frequently Asked Questions

Q: How do I connect to the VPN?
A: After purchasing a plan, you'll receive configuration files and detailed setup instructions for all major platforms.

Q: What payment methods do you accept?
A: We accept credit/debit cards, cryptocurrencies, and bank transfers. Payment details will be provided after selecting a plan.

Q: Can I use the VPN on multiple devices?
A: Yes! Each plan specifies the number of devices you can connect simultaneously.

Q: What is your refund policy?
A: We offer a 7-day money-back guarantee if you're not satisfied with our service.

Q: Is my connection secure?
A: Yes, we use industry-standard encryption protocols to ensure your connection is secure and private.`

const paymentText = `💳 Payment Information

After selecting a plan, you will receive payment instructions.

Available Payment Methods:
• Credit/Debit Cards
• Cryptocurrency (BTC, ETH, USDT)
• Bank Transfer

Payment Process:
1. Select a VPN plan
2. Follow the payment instructions
3. Send proof of payment (receipt screenshot)
4. Receive your VPN configuration within 24 hours

Need help with payment?
Contact our support team by sending a message here.`

const supportText = `📞 Contact Support

Need help with our VPN service? Our team is here to assist you!

Ways to Contact Us:
• Send a message directly in this chat
• Send a screenshot of any issues you're experiencing
• Reply with your order ID for order-related queries

Response Time:
We typically respond within 24 hours, but most inquiries are addressed within a few hours.

Just type your question or concern below and our team will get back to you as soon as possible.`

const downloadText = `📱 VPN Client Downloads

Our VPN works with the following applications:

Windows:
• OpenVPN GUI: https://openvpn.net/community-downloads/
• WireGuard: https://www.wireguard.com/install/

macOS:
• Tunnelblick: https://tunnelblick.net/downloads.html
• WireGuard: https://www.wireguard.com/install/

iOS:
• OpenVPN Connect / WireGuard: available on the App Store

Android:
• OpenVPN Connect / WireGuard: available on the Play Store

Linux:
• OpenVPN and WireGuard: available in your distribution's package manager

After purchase, you'll receive detailed setup instructions for your device.`

const apologyText = `Sorry, something went wrong. Please try again later.`

const supportAckText = `Thank you for your message. Our support team has been notified and will get back to you soon. Use /help to see all available commands.`
